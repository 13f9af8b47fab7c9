package public

import (
	"errors"
	"strconv"

	"github.com/inkwell-next/internal/http/response"
	"github.com/inkwell-next/internal/service"

	"github.com/gin-gonic/gin"
)

// parsePage 读取页码参数，缺省或非法按第 1 页处理
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) feedPageSize() int {
	if h.Config != nil && h.Config.Blog.PageSize > 0 {
		return h.Config.Blog.PageSize
	}
	return 10
}

// GetFeed 首页信息流：全部公开可见文章
func (h *Handler) GetFeed(c *gin.Context) {
	page := parsePage(c)
	pageSize := h.feedPageSize()

	result, err := h.PostService.ListFeed(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, result.Posts, response.NewPagination(result.Page, pageSize, result.Total))
}

// GetCategories 公开分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetCategoryPosts 分类页：分类不存在或未发布时整页 404
func (h *Handler) GetCategoryPosts(c *gin.Context) {
	slug := c.Param("slug")
	page := parsePage(c)
	pageSize := h.feedPageSize()

	category, result, err := h.PostService.ListByCategory(slug, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{
		"category": category,
		"posts":    result.Posts,
	}, response.NewPagination(result.Page, pageSize, result.Total))
}

// GetLocations 公开地点列表
func (h *Handler) GetLocations(c *gin.Context) {
	locations, err := h.LocationService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "error.location_fetch_failed", err)
		return
	}
	response.Success(c, locations)
}

// GetPost 文章详情：作者看自己的一切，其余人只看公开可见的
func (h *Handler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		respondError(c, response.CodeBadRequest, "error.post_id_invalid", nil)
		return
	}

	viewerID := getViewerID(c)
	post, err := h.PostService.GetVisible(uint(postID), viewerID)
	if err != nil {
		respondPostFetchError(c, err)
		return
	}

	// 可见性已由 GetVisible 确认，评论列表无需再查一次
	comments, err := h.CommentService.ListByPost(post.ID)
	if err != nil {
		respondCommentFetchError(c, err)
		return
	}

	response.Success(c, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// GetUserProfile 公开用户主页：基本资料 + 文章列表
// 作者本人访问时能看到自己未发布/未来发布的文章
func (h *Handler) GetUserProfile(c *gin.Context) {
	username := c.Param("username")

	user, err := h.UserAuthService.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.profile_fetch_failed", err)
		return
	}

	page := parsePage(c)
	pageSize := h.feedPageSize()
	result, err := h.PostService.ListByAuthor(user.ID, getViewerID(c), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{
		"profile": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"full_name":  user.FullName(),
		},
		"posts": result.Posts,
	}, response.NewPagination(result.Page, pageSize, result.Total))
}
