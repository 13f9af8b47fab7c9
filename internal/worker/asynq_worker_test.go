package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/provider"
	"github.com/inkwell-next/internal/queue"
	"github.com/inkwell-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func newConsumerForTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	c := &provider.Container{
		UserRepo:    repository.NewUserRepository(db),
		PostRepo:    repository.NewPostRepository(db),
		CommentRepo: repository.NewCommentRepository(db),
	}
	return NewConsumer(c), db
}

func newCommentNotifyTask(t *testing.T, payload queue.CommentNotifyEmailPayload) *asynq.Task {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(queue.TaskCommentNotifyEmail, raw)
}

func TestCommentNotifyEmailBadPayload(t *testing.T) {
	consumer, _ := newConsumerForTest(t)

	task := asynq.NewTask(queue.TaskCommentNotifyEmail, []byte("{not-json"))
	if err := consumer.handleCommentNotifyEmail(context.Background(), task); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestCommentNotifyEmailSkipsInvalidPayload(t *testing.T) {
	consumer, _ := newConsumerForTest(t)

	task := newCommentNotifyTask(t, queue.CommentNotifyEmailPayload{CommentID: 0, PostID: 0})
	if err := consumer.handleCommentNotifyEmail(context.Background(), task); err != nil {
		t.Fatalf("expected nil for empty payload, got %v", err)
	}
}

func TestCommentNotifyEmailSkipsMissingComment(t *testing.T) {
	consumer, _ := newConsumerForTest(t)

	task := newCommentNotifyTask(t, queue.CommentNotifyEmailPayload{CommentID: 999, PostID: 999})
	if err := consumer.handleCommentNotifyEmail(context.Background(), task); err != nil {
		t.Fatalf("expected nil for missing comment, got %v", err)
	}
}

func TestCommentNotifyEmailSkipsSelfComment(t *testing.T) {
	consumer, db := newConsumerForTest(t)

	author := &models.User{Username: "linzhou", Email: "linzhou@example.com", PasswordHash: "x"}
	if err := db.Create(author).Error; err != nil {
		t.Fatalf("create author failed: %v", err)
	}
	post := &models.Post{Title: "晚风", Text: "river walk", PubDate: time.Now(), IsPublished: true, AuthorID: author.ID}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	comment := &models.Comment{Text: "自评", PostID: post.ID, AuthorID: author.ID}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	// 作者给自己的文章评论不触发通知，也不应依赖邮件服务
	task := newCommentNotifyTask(t, queue.CommentNotifyEmailPayload{CommentID: comment.ID, PostID: post.ID})
	if err := consumer.handleCommentNotifyEmail(context.Background(), task); err != nil {
		t.Fatalf("expected nil for self comment, got %v", err)
	}
}
