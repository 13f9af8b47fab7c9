package service

import (
	"errors"
	"testing"
	"time"

	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"

	"gorm.io/gorm"
)

func newCommentServiceForTest(t *testing.T) (*CommentService, *PostService, *gorm.DB) {
	t.Helper()
	db := setupBlogTestDB(t)
	posts := repository.NewPostRepository(db)
	svc := NewCommentService(repository.NewCommentRepository(db), posts, nil)
	postSvc := NewPostService(posts, repository.NewCategoryRepository(db), repository.NewLocationRepository(db))
	return svc, postSvc, db
}

func TestAddCommentRequiresVisiblePost(t *testing.T) {
	svc, postSvc, db := newCommentServiceForTest(t)
	author := seedAuthor(t, db, "writer")
	reader := seedAuthor(t, db, "reader")
	category := seedCategory(t, db, "walks", true)

	hidden := false
	draft, err := postSvc.Create(author.ID, PostInput{Title: "draft", Text: "x", CategoryID: &category.ID, IsPublished: &hidden})
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	if _, err := svc.Add(draft.ID, reader.ID, "hello"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("comment on invisible post want ErrNotFound got %v", err)
	}

	// 作者可以评论自己的草稿
	comment, err := svc.Add(draft.ID, author.ID, "  note to self  ")
	if err != nil {
		t.Fatalf("author comment failed: %v", err)
	}
	if comment.Text != "note to self" {
		t.Fatalf("comment text should be trimmed, got %q", comment.Text)
	}
}

func TestCommentUpdateDeleteEnforceOwnership(t *testing.T) {
	svc, postSvc, db := newCommentServiceForTest(t)
	author := seedAuthor(t, db, "writer")
	commenter := seedAuthor(t, db, "reader")
	category := seedCategory(t, db, "walks", true)

	post, err := postSvc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &category.ID, PubDate: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	comment, err := svc.Add(post.ID, commenter.ID, "first")
	if err != nil {
		t.Fatalf("add comment failed: %v", err)
	}

	if _, err := svc.Update(post.ID, comment.ID, author.ID, "edited"); !errors.Is(err, ErrOwnershipDenied) {
		t.Fatalf("post author editing someone else's comment want ErrOwnershipDenied got %v", err)
	}
	if err := svc.Delete(post.ID, comment.ID, author.ID); !errors.Is(err, ErrOwnershipDenied) {
		t.Fatalf("post author deleting someone else's comment want ErrOwnershipDenied got %v", err)
	}

	updated, err := svc.Update(post.ID, comment.ID, commenter.ID, "edited")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Text != "edited" {
		t.Fatalf("text want edited got %s", updated.Text)
	}
	if err := svc.Delete(post.ID, comment.ID, commenter.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestCommentMutationsRequireMatchingPost(t *testing.T) {
	svc, postSvc, db := newCommentServiceForTest(t)
	author := seedAuthor(t, db, "writer")
	commenter := seedAuthor(t, db, "reader")
	category := seedCategory(t, db, "walks", true)

	post, err := postSvc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &category.ID, PubDate: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	other, err := postSvc.Create(author.ID, PostInput{Title: "t2", Text: "x", CategoryID: &category.ID, PubDate: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("create other post failed: %v", err)
	}
	comment, err := svc.Add(post.ID, commenter.ID, "first")
	if err != nil {
		t.Fatalf("add comment failed: %v", err)
	}

	// 评论挂在别的文章下时视为不存在，即使操作者是评论作者
	if _, err := svc.Update(other.ID, comment.ID, commenter.ID, "edited"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update via wrong post want ErrNotFound got %v", err)
	}
	if err := svc.Delete(other.ID, comment.ID, commenter.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete via wrong post want ErrNotFound got %v", err)
	}
	if err := svc.Delete(post.ID+other.ID+1, comment.ID, commenter.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete via missing post want ErrNotFound got %v", err)
	}

	// 正确的文章 ID 下一切照常
	if _, err := svc.Update(post.ID, comment.ID, commenter.ID, "edited"); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count comments failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("comment should remain on its post, count=%d", count)
	}
}

func TestListForPostFollowsPostVisibility(t *testing.T) {
	svc, postSvc, db := newCommentServiceForTest(t)
	author := seedAuthor(t, db, "writer")
	reader := seedAuthor(t, db, "reader")
	category := seedCategory(t, db, "walks", true)

	post, err := postSvc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &category.ID, PubDate: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if _, err := svc.Add(post.ID, reader.ID, "first"); err != nil {
		t.Fatalf("add comment failed: %v", err)
	}
	if _, err := svc.Add(post.ID, author.ID, "second"); err != nil {
		t.Fatalf("add comment failed: %v", err)
	}

	comments, err := svc.ListForPost(post.ID, 0)
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("comments want 2 got %d", len(comments))
	}
	if comments[0].Text != "first" {
		t.Fatalf("comments should be oldest first, got %s", comments[0].Text)
	}

	// 文章下线后评论对外不可见
	if _, err := postSvc.SetPublished(post.ID, false); err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if _, err := svc.ListForPost(post.ID, reader.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("comments of invisible post want ErrNotFound got %v", err)
	}
	if _, err := svc.ListForPost(post.ID, author.ID); err != nil {
		t.Fatalf("author should still list own post comments: %v", err)
	}

	// 调用方已确认可见性时直接取列表，顺序不变
	direct, err := svc.ListByPost(post.ID)
	if err != nil {
		t.Fatalf("list by post failed: %v", err)
	}
	if len(direct) != 2 || direct[0].Text != "first" {
		t.Fatalf("direct listing should keep order, got %d items", len(direct))
	}

	var comment models.Comment
	if err := db.Where("post_id = ?", post.ID).First(&comment).Error; err != nil {
		t.Fatalf("load comment failed: %v", err)
	}
	if comment.PostID != post.ID {
		t.Fatalf("comment should stay attached to post")
	}
}
