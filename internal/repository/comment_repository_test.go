package repository

import (
	"testing"
	"time"

	"github.com/inkwell-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCommentRepositoryTest(t *testing.T) (*GormCommentRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCommentRepository(db), db
}

func TestListByPostOrdersOldestFirst(t *testing.T) {
	repo, db := setupCommentRepositoryTest(t)
	author := createTestUser(t, db, "writer")

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	late := models.Comment{PostID: 1, AuthorID: author.ID, Text: "late", CreatedAt: base.Add(10 * time.Minute)}
	early := models.Comment{PostID: 1, AuthorID: author.ID, Text: "early", CreatedAt: base}
	otherPost := models.Comment{PostID: 2, AuthorID: author.ID, Text: "elsewhere", CreatedAt: base}
	for _, c := range []*models.Comment{&late, &early, &otherPost} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create comment failed: %v", err)
		}
	}

	comments, err := repo.ListByPost(1)
	if err != nil {
		t.Fatalf("list by post failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("comments want 2 got %d", len(comments))
	}
	if comments[0].Text != "early" || comments[1].Text != "late" {
		t.Fatalf("comments should be oldest first, got [%s %s]", comments[0].Text, comments[1].Text)
	}
}

func TestCommentListFilters(t *testing.T) {
	repo, db := setupCommentRepositoryTest(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	seed := []models.Comment{
		{PostID: 1, AuthorID: alice.ID, Text: "nice route"},
		{PostID: 1, AuthorID: bob.ID, Text: "saved for later"},
		{PostID: 2, AuthorID: alice.ID, Text: "route looks steep"},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("create comment failed: %v", err)
		}
	}

	_, total, err := repo.List(CommentListFilter{PostID: 1, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by post filter failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("post filter total want 2 got %d", total)
	}

	_, total, err = repo.List(CommentListFilter{AuthorID: alice.ID, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by author filter failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("author filter total want 2 got %d", total)
	}

	comments, total, err := repo.List(CommentListFilter{Search: "route", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by search filter failed: %v", err)
	}
	if total != 2 || len(comments) != 2 {
		t.Fatalf("search filter total want 2 got %d (%d rows)", total, len(comments))
	}
}

func TestCommentGetByIDMissingReturnsNil(t *testing.T) {
	repo, _ := setupCommentRepositoryTest(t)
	comment, err := repo.GetByID(404)
	if err != nil {
		t.Fatalf("get missing comment failed: %v", err)
	}
	if comment != nil {
		t.Fatalf("missing comment should be nil, got %+v", comment)
	}
}
