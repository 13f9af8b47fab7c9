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

// GetAdminComments 获取评论列表
func (h *Handler) GetAdminComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CommentListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("post_id")); raw != "" {
		postID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.PostID = uint(postID)
	}
	if raw := strings.TrimSpace(c.Query("author_id")); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.AuthorID = uint(authorID)
	}

	comments, total, err := h.CommentService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.comment_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, comments, response.NewPagination(page, pageSize, total))
}

// DeleteAdminComment 删除任意评论
func (h *Handler) DeleteAdminComment(c *gin.Context) {
	id, ok := parseAdminID(c, "error.comment_not_found")
	if !ok {
		return
	}

	if err := h.CommentService.DeleteAdmin(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.comment_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.comment_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
