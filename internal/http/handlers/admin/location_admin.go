package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/repository"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationRequest 创建/更新地点请求
type LocationRequest struct {
	Name        string `json:"name" binding:"required"`
	IsPublished *bool  `json:"is_published"`
}

// GetAdminLocations 获取地点列表
func (h *Handler) GetAdminLocations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	search := strings.TrimSpace(c.Query("search"))

	locations, total, err := h.LocationService.ListAdmin(repository.LocationListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.location_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, locations, response.NewPagination(page, pageSize, total))
}

// CreateLocation 创建地点
func (h *Handler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	location, err := h.LocationService.Create(service.LocationInput{
		Name:        req.Name,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.location_save_failed", err)
		return
	}
	response.Success(c, location)
}

// UpdateLocation 更新地点
func (h *Handler) UpdateLocation(c *gin.Context) {
	id, ok := parseAdminID(c, "error.location_not_found")
	if !ok {
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	location, err := h.LocationService.Update(id, service.LocationInput{
		Name:        req.Name,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.location_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.location_save_failed", err)
		return
	}
	response.Success(c, location)
}

// DeleteLocation 删除地点，地点下还有文章时拒绝
func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := parseAdminID(c, "error.location_not_found")
	if !ok {
		return
	}

	if err := h.LocationService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.location_not_found", nil)
		case errors.Is(err, service.ErrLocationInUse):
			respondError(c, response.CodeBadRequest, "error.location_in_use", nil)
		default:
			respondError(c, response.CodeInternal, "error.location_delete_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
