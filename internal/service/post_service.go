package service

import (
	"time"

	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"
)

// PostService 文章业务服务
type PostService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	locations  repository.LocationRepository
}

// NewPostService 创建文章服务
func NewPostService(
	posts repository.PostRepository,
	categories repository.CategoryRepository,
	locations repository.LocationRepository,
) *PostService {
	return &PostService{posts: posts, categories: categories, locations: locations}
}

// PostInput 创建/更新文章输入
type PostInput struct {
	Title       string
	Text        string
	PubDate     time.Time
	CategoryID  *uint
	LocationID  *uint
	IsPublished *bool
}

// PostPage 分页后的文章列表
type PostPage struct {
	Posts []models.Post
	Total int64
	Page  int
}

// ListFeed 首页信息流
func (s *PostService) ListFeed(page, pageSize int) (*PostPage, error) {
	posts, total, effective, err := s.posts.ListVisible(repository.FeedScope(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Total: total, Page: effective}, nil
}

// ListByCategory 分类页：分类必须存在且已发布
func (s *PostService) ListByCategory(slug string, page, pageSize int) (*models.Category, *PostPage, error) {
	category, err := s.categories.GetBySlug(slug, true)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, ErrNotFound
	}

	posts, total, effective, err := s.posts.ListVisible(repository.CategoryScope(category.ID, page, pageSize))
	if err != nil {
		return nil, nil, err
	}
	return category, &PostPage{Posts: posts, Total: total, Page: effective}, nil
}

// ListByAuthor 作者主页：作者本人能看到自己的全部文章
func (s *PostService) ListByAuthor(authorID, viewerID uint, page, pageSize int) (*PostPage, error) {
	posts, total, effective, err := s.posts.ListVisible(repository.AuthorScope(authorID, viewerID, page, pageSize))
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Total: total, Page: effective}, nil
}

// GetVisible 按观察者取文章详情
func (s *PostService) GetVisible(id uint, viewerID uint) (*models.Post, error) {
	post, err := s.posts.GetVisible(id, viewerID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章
func (s *PostService) Create(authorID uint, input PostInput) (*models.Post, error) {
	if err := s.validateRelations(input); err != nil {
		return nil, err
	}

	pubDate := input.PubDate
	if pubDate.IsZero() {
		pubDate = time.Now()
	}
	isPublished := true
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	post := models.Post{
		Title:       input.Title,
		Text:        input.Text,
		PubDate:     pubDate,
		IsPublished: isPublished,
		AuthorID:    authorID,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
	}

	if err := s.posts.Create(&post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(post.ID)
}

// Update 更新文章，仅作者本人可操作
func (s *PostService) Update(id uint, actorID uint, input PostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.AuthorID != actorID {
		return nil, ErrOwnershipDenied
	}

	if err := s.validateRelations(input); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Text = input.Text
	if !input.PubDate.IsZero() {
		post.PubDate = input.PubDate
	}
	post.CategoryID = input.CategoryID
	post.LocationID = input.LocationID
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(post.ID)
}

// Delete 删除文章，仅作者本人可操作；评论随文章一并删除
func (s *PostService) Delete(id uint, actorID uint) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.AuthorID != actorID {
		return ErrOwnershipDenied
	}
	return s.posts.Delete(id)
}

// ListAdmin 后台文章列表，不做可见性过滤
func (s *PostService) ListAdmin(filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.posts.List(filter)
}

// GetAdmin 后台取任意文章
func (s *PostService) GetAdmin(id uint) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// SetPublished 后台切换文章发布状态
func (s *PostService) SetPublished(id uint, isPublished bool) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	post.IsPublished = isPublished
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteAdmin 后台删除任意文章
func (s *PostService) DeleteAdmin(id uint) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	return s.posts.Delete(id)
}

// validateRelations 校验分类与地点存在
func (s *PostService) validateRelations(input PostInput) error {
	if input.CategoryID != nil {
		category, err := s.categories.GetByID(*input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryInvalid
		}
	}
	if input.LocationID != nil {
		location, err := s.locations.GetByID(*input.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return ErrLocationInvalid
		}
	}
	return nil
}
