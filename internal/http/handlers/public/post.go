package public

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PostRequest 创建/更新文章请求
type PostRequest struct {
	Title       string `json:"title" binding:"required"`
	Text        string `json:"text" binding:"required"`
	PubDate     string `json:"pub_date"`
	CategoryID  *uint  `json:"category_id"`
	LocationID  *uint  `json:"location_id"`
	IsPublished *bool  `json:"is_published"`
}

func (r PostRequest) toServiceInput() (service.PostInput, error) {
	input := service.PostInput{
		Title:       r.Title,
		Text:        r.Text,
		CategoryID:  r.CategoryID,
		LocationID:  r.LocationID,
		IsPublished: r.IsPublished,
	}
	if r.PubDate != "" {
		pubDate, err := time.Parse(time.RFC3339, r.PubDate)
		if err != nil {
			return input, err
		}
		input.PubDate = pubDate
	}
	return input, nil
}

// redirectToPost 所有权校验失败时跳回文章详情，不作为硬错误返回
func redirectToPost(c *gin.Context, postID uint) {
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/posts/%d", postID))
}

// CreatePost 发布文章
func (h *Handler) CreatePost(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.pub_date_invalid", nil)
		return
	}

	post, err := h.PostService.Create(uid, input)
	if err != nil {
		respondPostSaveError(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost 修改文章，非作者跳回详情页
func (h *Handler) UpdatePost(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.post_id_invalid", nil)
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.pub_date_invalid", nil)
		return
	}

	post, err := h.PostService.Update(uint(postID), uid, input)
	if err != nil {
		if errors.Is(err, service.ErrOwnershipDenied) {
			redirectToPost(c, uint(postID))
			return
		}
		respondPostSaveError(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost 删除文章及其全部评论，非作者跳回详情页
func (h *Handler) DeletePost(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.post_id_invalid", nil)
		return
	}

	if err := h.PostService.Delete(uint(postID), uid); err != nil {
		if errors.Is(err, service.ErrOwnershipDenied) {
			redirectToPost(c, uint(postID))
			return
		}
		respondWithMappedError(c, err, postNotFoundErrorRules, response.CodeInternal, "error.post_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
