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

// GetAdminPosts 获取文章列表，不做可见性过滤
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	search := strings.TrimSpace(c.Query("search"))
	filter := repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	}
	if raw := strings.TrimSpace(c.Query("author_id")); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.AuthorID = uint(authorID)
	}
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.CategoryID = uint(categoryID)
	}
	if raw := strings.TrimSpace(c.Query("is_published")); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.IsPublished = &published
	}

	posts, total, err := h.PostService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, posts, response.NewPagination(page, pageSize, total))
}

// GetAdminPost 获取任意文章详情
func (h *Handler) GetAdminPost(c *gin.Context) {
	id, ok := parseAdminID(c, "error.post_id_invalid")
	if !ok {
		return
	}

	post, err := h.PostService.GetAdmin(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.Success(c, post)
}

// SetPostPublishedRequest 切换文章发布状态请求
type SetPostPublishedRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

// SetPostPublished 切换文章发布状态
func (h *Handler) SetPostPublished(c *gin.Context) {
	id, ok := parseAdminID(c, "error.post_id_invalid")
	if !ok {
		return
	}

	var req SetPostPublishedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.PostService.SetPublished(id, *req.IsPublished)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_save_failed", err)
		return
	}
	response.Success(c, post)
}

// DeleteAdminPost 删除任意文章及其评论
func (h *Handler) DeleteAdminPost(c *gin.Context) {
	id, ok := parseAdminID(c, "error.post_id_invalid")
	if !ok {
		return
	}

	if err := h.PostService.DeleteAdmin(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
