package service

import (
	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	categories repository.CategoryRepository
	posts      repository.PostRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categories repository.CategoryRepository, posts repository.PostRepository) *CategoryService {
	return &CategoryService{categories: categories, posts: posts}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Title       string
	Description string
	Slug        string
	IsPublished *bool
}

// ListPublic 公开分类列表
func (s *CategoryService) ListPublic() ([]models.Category, error) {
	categories, _, err := s.categories.List(repository.CategoryListFilter{OnlyPublished: true})
	return categories, err
}

// ListAdmin 后台分类列表
func (s *CategoryService) ListAdmin(filter repository.CategoryListFilter) ([]models.Category, int64, error) {
	return s.categories.List(filter)
}

// Get 取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	count, err := s.categories.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	isPublished := true
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	category := models.Category{
		Title:       input.Title,
		Description: input.Description,
		Slug:        input.Slug,
		IsPublished: isPublished,
	}
	if err := s.categories.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	count, err := s.categories.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category.Title = input.Title
	category.Description = input.Description
	category.Slug = input.Slug
	if input.IsPublished != nil {
		category.IsPublished = *input.IsPublished
	}

	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类，分类下还有文章时拒绝
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	count, err := s.posts.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categories.Delete(id)
}
