package public

import (
	"errors"
	"strconv"

	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentRequest 发表/修改评论请求
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func parsePostAndCommentID(c *gin.Context) (uint, uint, bool) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.post_id_invalid", nil)
		return 0, 0, false
	}
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		respondError(c, response.CodeBadRequest, "error.comment_not_found", nil)
		return 0, 0, false
	}
	return uint(postID), uint(commentID), true
}

// GetPostComments 文章评论列表，按发布时间正序
func (h *Handler) GetPostComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.post_id_invalid", nil)
		return
	}

	comments, err := h.CommentService.ListForPost(uint(postID), getViewerID(c))
	if err != nil {
		respondCommentFetchError(c, err)
		return
	}
	response.Success(c, comments)
}

// AddComment 发表评论，目标文章必须对评论人可见
func (h *Handler) AddComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.post_id_invalid", nil)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	comment, err := h.CommentService.Add(uint(postID), uid, req.Text)
	if err != nil {
		respondCommentSaveError(c, err)
		return
	}
	response.Success(c, comment)
}

// UpdateComment 修改评论，非评论作者跳回文章详情页
func (h *Handler) UpdateComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	postID, commentID, ok := parsePostAndCommentID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	comment, err := h.CommentService.Update(postID, commentID, uid, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrOwnershipDenied) {
			redirectToPost(c, postID)
			return
		}
		respondCommentSaveError(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论，非评论作者跳回文章详情页
func (h *Handler) DeleteComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	postID, commentID, ok := parsePostAndCommentID(c)
	if !ok {
		return
	}

	if err := h.CommentService.Delete(postID, commentID, uid); err != nil {
		if errors.Is(err, service.ErrOwnershipDenied) {
			redirectToPost(c, postID)
			return
		}
		respondWithMappedError(c, err, commentNotFoundErrorRules, response.CodeInternal, "error.comment_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
