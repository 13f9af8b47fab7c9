package repository

import "time"

// PostScope 公开侧文章列表的查询范围
type PostScopeKind string

const (
	// PostScopeFeed 首页信息流
	PostScopeFeed PostScopeKind = "feed"
	// PostScopeCategory 分类页
	PostScopeCategory PostScopeKind = "category"
	// PostScopeAuthor 作者主页
	PostScopeAuthor PostScopeKind = "author"
)

// PostScope 描述一次公开列表查询：范围 + 观察者。
// ViewerID 非零时，作者本人可以看到自己的隐藏与未来文章（仅 author 范围生效）。
type PostScope struct {
	Kind       PostScopeKind
	CategoryID uint
	AuthorID   uint
	ViewerID   uint
	Page       int
	PageSize   int
}

// FeedScope 首页信息流范围
func FeedScope(page, pageSize int) PostScope {
	return PostScope{Kind: PostScopeFeed, Page: page, PageSize: pageSize}
}

// CategoryScope 分类页范围
func CategoryScope(categoryID uint, page, pageSize int) PostScope {
	return PostScope{Kind: PostScopeCategory, CategoryID: categoryID, Page: page, PageSize: pageSize}
}

// AuthorScope 作者主页范围
func AuthorScope(authorID, viewerID uint, page, pageSize int) PostScope {
	return PostScope{Kind: PostScopeAuthor, AuthorID: authorID, ViewerID: viewerID, Page: page, PageSize: pageSize}
}

// PostListFilter 管理端查询文章列表的过滤条件
type PostListFilter struct {
	Page        int
	PageSize    int
	AuthorID    uint
	CategoryID  uint
	Search      string
	IsPublished *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page          int
	PageSize      int
	Search        string
	OnlyPublished bool
}

// LocationListFilter 查询地点列表的过滤条件
type LocationListFilter struct {
	Page          int
	PageSize      int
	Search        string
	OnlyPublished bool
}

// CommentListFilter 查询评论列表的过滤条件
type CommentListFilter struct {
	Page     int
	PageSize int
	PostID   uint
	AuthorID uint
	Search   string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page          int
	PageSize      int
	Keyword       string
	Status        string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	LastLoginFrom *time.Time
	LastLoginTo   *time.Time
}

// UserLoginLogListFilter 查询用户登录日志列表的过滤条件
type UserLoginLogListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Identifier  string
	Status      string
	FailReason  string
	ClientIP    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AuthzAuditLogListFilter 查询权限审计日志列表的过滤条件
type AuthzAuditLogListFilter struct {
	Page            int
	PageSize        int
	OperatorAdminID uint
	TargetAdminID   uint
	Action          string
	Role            string
	Object          string
	Method          string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
}
