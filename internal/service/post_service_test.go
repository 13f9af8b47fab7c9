package service

import (
	"errors"
	"testing"
	"time"

	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBlogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Location{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func newPostServiceForTest(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := setupBlogTestDB(t)
	return NewPostService(
		repository.NewPostRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewLocationRepository(db),
	), db
}

func seedAuthor(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{Title: slug, Slug: slug, IsPublished: published}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func TestPostCreateValidatesRelations(t *testing.T) {
	svc, db := newPostServiceForTest(t)
	author := seedAuthor(t, db, "writer")

	missingCategory := uint(404)
	_, err := svc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &missingCategory})
	if !errors.Is(err, ErrCategoryInvalid) {
		t.Fatalf("missing category want ErrCategoryInvalid got %v", err)
	}

	missingLocation := uint(404)
	_, err = svc.Create(author.ID, PostInput{Title: "t", Text: "x", LocationID: &missingLocation})
	if !errors.Is(err, ErrLocationInvalid) {
		t.Fatalf("missing location want ErrLocationInvalid got %v", err)
	}

	category := seedCategory(t, db, "walks", true)
	post, err := svc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if post.AuthorID != author.ID {
		t.Fatalf("author want %d got %d", author.ID, post.AuthorID)
	}
	if post.PubDate.IsZero() {
		t.Fatalf("zero pub date should default to now")
	}
	if !post.IsPublished {
		t.Fatalf("is_published should default to true")
	}
}

func TestPostUpdateAndDeleteEnforceOwnership(t *testing.T) {
	svc, db := newPostServiceForTest(t)
	author := seedAuthor(t, db, "writer")
	intruder := seedAuthor(t, db, "reader")
	category := seedCategory(t, db, "walks", true)

	post, err := svc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	_, err = svc.Update(post.ID, intruder.ID, PostInput{Title: "hacked", Text: "x"})
	if !errors.Is(err, ErrOwnershipDenied) {
		t.Fatalf("update by non-owner want ErrOwnershipDenied got %v", err)
	}

	if err := svc.Delete(post.ID, intruder.ID); !errors.Is(err, ErrOwnershipDenied) {
		t.Fatalf("delete by non-owner want ErrOwnershipDenied got %v", err)
	}

	updated, err := svc.Update(post.ID, author.ID, PostInput{Title: "edited", Text: "y", CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("update by owner failed: %v", err)
	}
	if updated.Title != "edited" {
		t.Fatalf("title want edited got %s", updated.Title)
	}
	if updated.AuthorID != author.ID {
		t.Fatalf("author must not change on update")
	}

	if err := svc.Delete(post.ID, author.ID); err != nil {
		t.Fatalf("delete by owner failed: %v", err)
	}
	if _, err := svc.GetVisible(post.ID, author.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted post want ErrNotFound got %v", err)
	}
}

func TestGetVisibleUnionOfOwnAndPublic(t *testing.T) {
	svc, db := newPostServiceForTest(t)
	author := seedAuthor(t, db, "writer")
	reader := seedAuthor(t, db, "reader")
	category := seedCategory(t, db, "walks", true)

	hidden := false
	draft, err := svc.Create(author.ID, PostInput{Title: "draft", Text: "x", CategoryID: &category.ID, IsPublished: &hidden})
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	if _, err := svc.GetVisible(draft.ID, author.ID); err != nil {
		t.Fatalf("author should see own draft: %v", err)
	}
	if _, err := svc.GetVisible(draft.ID, reader.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("reader on draft want ErrNotFound got %v", err)
	}
	if _, err := svc.GetVisible(draft.ID, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("anonymous on draft want ErrNotFound got %v", err)
	}
}

func TestListByCategoryRequiresPublishedCategory(t *testing.T) {
	svc, db := newPostServiceForTest(t)
	seedCategory(t, db, "offline", false)

	if _, _, err := svc.ListByCategory("offline", 1, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unpublished category want ErrNotFound got %v", err)
	}
	if _, _, err := svc.ListByCategory("no-such", 1, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing category want ErrNotFound got %v", err)
	}
}

func TestSetPublishedTogglesAnyPost(t *testing.T) {
	svc, db := newPostServiceForTest(t)
	author := seedAuthor(t, db, "writer")
	category := seedCategory(t, db, "walks", true)

	post, err := svc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &category.ID, PubDate: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	toggled, err := svc.SetPublished(post.ID, false)
	if err != nil {
		t.Fatalf("set published failed: %v", err)
	}
	if toggled.IsPublished {
		t.Fatalf("post should be unpublished")
	}

	if _, err := svc.GetVisible(post.ID, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unpublished post should vanish from public view, got %v", err)
	}
}
