package service

import (
	"strings"

	"github.com/inkwell-next/internal/logger"
	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/queue"
	"github.com/inkwell-next/internal/repository"
)

// CommentService 评论业务服务
type CommentService struct {
	comments    repository.CommentRepository
	posts       repository.PostRepository
	queueClient *queue.Client
}

// NewCommentService 创建评论服务
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	queueClient *queue.Client,
) *CommentService {
	return &CommentService{comments: comments, posts: posts, queueClient: queueClient}
}

// ListForPost 文章下的评论，按时间正序；文章对观察者不可见时视为不存在
func (s *CommentService) ListForPost(postID uint, viewerID uint) ([]models.Comment, error) {
	post, err := s.posts.GetVisible(postID, viewerID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return s.comments.ListByPost(postID)
}

// ListByPost 按时间正序列出评论，调用方需先完成文章可见性校验
func (s *CommentService) ListByPost(postID uint) ([]models.Comment, error) {
	return s.comments.ListByPost(postID)
}

// Add 发表评论，评论人必须能看到目标文章
func (s *CommentService) Add(postID uint, authorID uint, text string) (*models.Comment, error) {
	post, err := s.posts.GetVisible(postID, authorID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	comment := models.Comment{
		Text:     strings.TrimSpace(text),
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.comments.Create(&comment); err != nil {
		return nil, err
	}

	// 通知文章作者，失败只记日志不影响评论
	if s.queueClient.Enabled() && post.AuthorID != authorID {
		payload := queue.CommentNotifyEmailPayload{CommentID: comment.ID, PostID: postID}
		if err := s.queueClient.EnqueueCommentNotifyEmail(payload); err != nil {
			logger.Warnw("comment_notify_enqueue_failed",
				"comment_id", comment.ID,
				"post_id", postID,
				"error", err,
			)
		}
	}

	return s.comments.GetByID(comment.ID)
}

// Update 修改评论，仅评论作者本人可操作；评论必须属于 URL 中的文章
func (s *CommentService) Update(postID uint, id uint, actorID uint, text string) (*models.Comment, error) {
	comment, err := s.getForPost(postID, id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != actorID {
		return nil, ErrOwnershipDenied
	}

	comment.Text = strings.TrimSpace(text)
	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete 删除评论，仅评论作者本人可操作；评论必须属于 URL 中的文章
func (s *CommentService) Delete(postID uint, id uint, actorID uint) error {
	comment, err := s.getForPost(postID, id)
	if err != nil {
		return err
	}
	if comment.AuthorID != actorID {
		return ErrOwnershipDenied
	}
	return s.comments.Delete(id)
}

// getForPost 取指定文章下的评论，文章不匹配时视为不存在
func (s *CommentService) getForPost(postID uint, id uint) (*models.Comment, error) {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrNotFound
	}
	return comment, nil
}

// ListAdmin 后台评论列表
func (s *CommentService) ListAdmin(filter repository.CommentListFilter) ([]models.Comment, int64, error) {
	return s.comments.List(filter)
}

// DeleteAdmin 后台删除任意评论
func (s *CommentService) DeleteAdmin(id uint) error {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	return s.comments.Delete(id)
}
