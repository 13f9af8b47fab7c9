package queue

import (
	"encoding/json"

	"github.com/inkwell-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCommentNotifyEmail 评论通知邮件任务
	TaskCommentNotifyEmail = constants.TaskCommentNotifyEmail
)

// CommentNotifyEmailPayload 评论通知邮件任务载荷
type CommentNotifyEmailPayload struct {
	CommentID uint `json:"comment_id"`
	PostID    uint `json:"post_id"`
}

// NewCommentNotifyEmailTask 创建评论通知邮件任务
func NewCommentNotifyEmailTask(payload CommentNotifyEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCommentNotifyEmail, body), nil
}
