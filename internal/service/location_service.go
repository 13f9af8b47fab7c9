package service

import (
	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"
)

// LocationService 地点业务服务
type LocationService struct {
	locations repository.LocationRepository
	posts     repository.PostRepository
}

// NewLocationService 创建地点服务
func NewLocationService(locations repository.LocationRepository, posts repository.PostRepository) *LocationService {
	return &LocationService{locations: locations, posts: posts}
}

// LocationInput 创建/更新地点输入
type LocationInput struct {
	Name        string
	IsPublished *bool
}

// ListPublic 公开地点列表
func (s *LocationService) ListPublic() ([]models.Location, error) {
	locations, _, err := s.locations.List(repository.LocationListFilter{OnlyPublished: true})
	return locations, err
}

// ListAdmin 后台地点列表
func (s *LocationService) ListAdmin(filter repository.LocationListFilter) ([]models.Location, int64, error) {
	return s.locations.List(filter)
}

// Get 取地点
func (s *LocationService) Get(id uint) (*models.Location, error) {
	location, err := s.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}
	return location, nil
}

// Create 创建地点
func (s *LocationService) Create(input LocationInput) (*models.Location, error) {
	isPublished := true
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	location := models.Location{
		Name:        input.Name,
		IsPublished: isPublished,
	}
	if err := s.locations.Create(&location); err != nil {
		return nil, err
	}
	return &location, nil
}

// Update 更新地点
func (s *LocationService) Update(id uint, input LocationInput) (*models.Location, error) {
	location, err := s.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}

	location.Name = input.Name
	if input.IsPublished != nil {
		location.IsPublished = *input.IsPublished
	}

	if err := s.locations.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// Delete 删除地点，地点下还有文章时拒绝
func (s *LocationService) Delete(id uint) error {
	location, err := s.locations.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return ErrNotFound
	}

	count, err := s.posts.CountByLocation(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrLocationInUse
	}
	return s.locations.Delete(id)
}
