package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/inkwell-next/internal/models"

	"gorm.io/gorm"
)

// PostRepository 文章数据访问接口
type PostRepository interface {
	ListVisible(scope PostScope) ([]models.Post, int64, int, error)
	List(filter PostListFilter) ([]models.Post, int64, error)
	GetByID(id uint) (*models.Post, error)
	GetVisible(id uint, viewerID uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) error
	CountByCategory(categoryID uint) (int64, error)
	CountByLocation(locationID uint) (int64, error)
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// publicVisible 公开可见条件：文章已发布、发布时间不在未来、所属分类存在且已发布。
// 未挂分类的文章不对外展示。
func publicVisible(query *gorm.DB, now time.Time) *gorm.DB {
	return query.
		Where("posts.is_published = ?", true).
		Where("posts.pub_date <= ?", now).
		Where("posts.category_id IS NOT NULL").
		Where("EXISTS (SELECT 1 FROM categories WHERE categories.id = posts.category_id AND categories.is_published = ?)", true)
}

// withCommentCount 附带评论数的查询列
func withCommentCount(query *gorm.DB) *gorm.DB {
	return query.Select("posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count")
}

// ListVisible 公开侧文章列表。
// 返回值依次为：文章、总数、实际生效的页码（越界页码会被收敛到末页）。
func (r *GormPostRepository) ListVisible(scope PostScope) ([]models.Post, int64, int, error) {
	now := time.Now()
	query := r.db.Model(&models.Post{})

	switch scope.Kind {
	case PostScopeCategory:
		query = publicVisible(query, now).Where("posts.category_id = ?", scope.CategoryID)
	case PostScopeAuthor:
		if scope.ViewerID != 0 && scope.ViewerID == scope.AuthorID {
			// 作者本人可以看到自己全部文章，包括隐藏与未来的
			query = query.Where("posts.author_id = ?", scope.AuthorID)
		} else {
			query = publicVisible(query, now).Where("posts.author_id = ?", scope.AuthorID)
		}
	default:
		query = publicVisible(query, now)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, 1, err
	}

	page := clampPage(scope.Page, scope.PageSize, total)
	query = applyPagination(query, page, scope.PageSize)

	var posts []models.Post
	err := withCommentCount(query).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC, posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, 0, 1, err
	}
	return posts, total, page, nil
}

// List 管理端文章列表，不做可见性过滤
func (r *GormPostRepository) List(filter PostListFilter) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{})

	if filter.AuthorID != 0 {
		query = query.Where("posts.author_id = ?", filter.AuthorID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("posts.category_id = ?", filter.CategoryID)
	}
	if filter.IsPublished != nil {
		query = query.Where("posts.is_published = ?", *filter.IsPublished)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("posts.title LIKE ? OR posts.text LIKE ?", like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("posts.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("posts.created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var posts []models.Post
	err := withCommentCount(query).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC, posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetByID 根据 ID 获取文章，不做可见性过滤
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := withCommentCount(r.db.Model(&models.Post{})).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetVisible 获取观察者可见的文章：作者本人可见自己的任意文章，其余人只能看到公开可见的。
func (r *GormPostRepository) GetVisible(id uint, viewerID uint) (*models.Post, error) {
	now := time.Now()
	query := r.db.Model(&models.Post{}).Where("posts.id = ?", id)
	if viewerID != 0 {
		query = query.Where(
			"posts.author_id = ? OR (posts.is_published = ? AND posts.pub_date <= ? AND posts.category_id IS NOT NULL"+
				" AND EXISTS (SELECT 1 FROM categories WHERE categories.id = posts.category_id AND categories.is_published = ?))",
			viewerID, true, now, true,
		)
	} else {
		query = publicVisible(query, now)
	}

	var post models.Post
	err := withCommentCount(query).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create 创建文章
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update 更新文章
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete 删除文章，同事务内清理其下全部评论
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// CountByCategory 统计分类下的文章数
func (r *GormPostRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// CountByLocation 统计地点下的文章数
func (r *GormPostRepository) CountByLocation(locationID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("location_id = ?", locationID).Count(&count).Error
	return count, err
}
