//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/inkwell-next/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.Comment{},
		&models.Post{},
		&models.Location{},
		&models.Category{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Post{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresVisibilityQueries(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewPostRepository(db)

	author := &models.User{Username: "pgwriter", Email: "pgwriter@example.com", PasswordHash: "x"}
	if err := db.Create(author).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	published := &models.Category{Title: "published", Slug: "pg-published", IsPublished: true}
	hidden := &models.Category{Title: "hidden", Slug: "pg-hidden", IsPublished: false}
	for _, c := range []*models.Category{published, hidden} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}

	now := time.Now()
	seed := []models.Post{
		{Title: "visible", Text: "x", PubDate: now.Add(-time.Hour), IsPublished: true, AuthorID: author.ID, CategoryID: &published.ID},
		{Title: "future", Text: "x", PubDate: now.Add(time.Hour), IsPublished: true, AuthorID: author.ID, CategoryID: &published.ID},
		{Title: "draft", Text: "x", PubDate: now.Add(-time.Hour), IsPublished: false, AuthorID: author.ID, CategoryID: &published.ID},
		{Title: "offline-category", Text: "x", PubDate: now.Add(-time.Hour), IsPublished: true, AuthorID: author.ID, CategoryID: &hidden.ID},
		{Title: "no-category", Text: "x", PubDate: now.Add(-time.Hour), IsPublished: true, AuthorID: author.ID},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("create post failed: %v", err)
		}
	}

	posts, total, _, err := repo.ListVisible(FeedScope(1, 10))
	if err != nil {
		t.Fatalf("list visible failed: %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].Title != "visible" {
		t.Fatalf("feed should hold the single public post, got total=%d posts=%d", total, len(posts))
	}

	_, total, _, err = repo.ListVisible(AuthorScope(author.ID, author.ID, 1, 10))
	if err != nil {
		t.Fatalf("list own failed: %v", err)
	}
	if total != int64(len(seed)) {
		t.Fatalf("author should see all %d own posts, got %d", len(seed), total)
	}

	got, err := repo.GetVisible(seed[2].ID, 0)
	if err != nil {
		t.Fatalf("get visible failed: %v", err)
	}
	if got != nil {
		t.Fatalf("draft should be invisible to anonymous viewers")
	}
}

func TestPostgresCommentCountSubquery(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewPostRepository(db)
	comments := NewCommentRepository(db)

	author := &models.User{Username: "pgwriter", Email: "pgwriter@example.com", PasswordHash: "x"}
	if err := db.Create(author).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	category := &models.Category{Title: "published", Slug: "pg-published", IsPublished: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	post := models.Post{Title: "t", Text: "x", PubDate: time.Now().Add(-time.Hour), IsPublished: true, AuthorID: author.ID, CategoryID: &category.ID}
	if err := repo.Create(&post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := comments.Create(&models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "c"}); err != nil {
			t.Fatalf("create comment failed: %v", err)
		}
	}

	got, err := repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("get post failed: %v", err)
	}
	if got.CommentCount != 2 {
		t.Fatalf("comment_count want 2 got %d", got.CommentCount)
	}
}
