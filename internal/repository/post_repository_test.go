package repository

import (
	"testing"
	"time"

	"github.com/inkwell-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPostRepositoryTest(t *testing.T) (*GormPostRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Location{}, &models.Post{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewPostRepository(db), db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{Title: slug, Slug: slug, IsPublished: published}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestPost(t *testing.T, repo *GormPostRepository, authorID uint, categoryID *uint, pubDate time.Time, published bool) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       "post",
		Text:        "text",
		PubDate:     pubDate,
		IsPublished: published,
		AuthorID:    authorID,
		CategoryID:  categoryID,
	}
	if err := repo.Create(post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func TestListVisibleExcludesHiddenFutureAndUncategorized(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createTestUser(t, db, "writer")
	published := createTestCategory(t, db, "published", true)
	hidden := createTestCategory(t, db, "hidden", false)
	now := time.Now()

	visible := createTestPost(t, repo, author.ID, &published.ID, now.Add(-time.Hour), true)
	createTestPost(t, repo, author.ID, &published.ID, now.Add(time.Hour), true)   // 未来发布
	createTestPost(t, repo, author.ID, &published.ID, now.Add(-time.Hour), false) // 草稿
	createTestPost(t, repo, author.ID, &hidden.ID, now.Add(-time.Hour), true)     // 分类下线
	createTestPost(t, repo, author.ID, nil, now.Add(-time.Hour), true)            // 未挂分类

	posts, total, page, err := repo.ListVisible(FeedScope(1, 10))
	if err != nil {
		t.Fatalf("list visible failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if page != 1 {
		t.Fatalf("page want 1 got %d", page)
	}
	if len(posts) != 1 || posts[0].ID != visible.ID {
		t.Fatalf("only the public post should be listed, got %+v", posts)
	}
}

func TestListVisibleAuthorSeesOwnDrafts(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createTestUser(t, db, "writer")
	other := createTestUser(t, db, "reader")
	category := createTestCategory(t, db, "published", true)
	now := time.Now()

	createTestPost(t, repo, author.ID, &category.ID, now.Add(-time.Hour), true)
	createTestPost(t, repo, author.ID, &category.ID, now.Add(time.Hour), true)
	createTestPost(t, repo, author.ID, nil, now.Add(-time.Hour), false)

	_, total, _, err := repo.ListVisible(AuthorScope(author.ID, author.ID, 1, 10))
	if err != nil {
		t.Fatalf("list own failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("author should see all 3 own posts, got %d", total)
	}

	_, total, _, err = repo.ListVisible(AuthorScope(author.ID, other.ID, 1, 10))
	if err != nil {
		t.Fatalf("list as visitor failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("visitor should see 1 public post, got %d", total)
	}
}

func TestListVisibleOrderAndTieBreak(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createTestUser(t, db, "writer")
	category := createTestCategory(t, db, "published", true)
	samePubDate := time.Now().Add(-time.Hour).Truncate(time.Second)

	first := createTestPost(t, repo, author.ID, &category.ID, samePubDate, true)
	second := createTestPost(t, repo, author.ID, &category.ID, samePubDate, true)
	older := createTestPost(t, repo, author.ID, &category.ID, samePubDate.Add(-time.Hour), true)

	posts, _, _, err := repo.ListVisible(FeedScope(1, 10))
	if err != nil {
		t.Fatalf("list visible failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("posts want 3 got %d", len(posts))
	}
	// 同一发布时间按 ID 倒序，新的在前
	if posts[0].ID != second.ID || posts[1].ID != first.ID || posts[2].ID != older.ID {
		t.Fatalf("order want [%d %d %d] got [%d %d %d]",
			second.ID, first.ID, older.ID, posts[0].ID, posts[1].ID, posts[2].ID)
	}
}

func TestListVisibleClampsOutOfRangePage(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createTestUser(t, db, "writer")
	category := createTestCategory(t, db, "published", true)
	now := time.Now()
	for i := 0; i < 5; i++ {
		createTestPost(t, repo, author.ID, &category.ID, now.Add(-time.Duration(i+1)*time.Hour), true)
	}

	posts, total, page, err := repo.ListVisible(FeedScope(99, 2))
	if err != nil {
		t.Fatalf("list visible failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if page != 3 {
		t.Fatalf("out-of-range page should land on last page 3, got %d", page)
	}
	if len(posts) != 1 {
		t.Fatalf("last page should hold 1 post, got %d", len(posts))
	}

	_, _, page, err = repo.ListVisible(FeedScope(0, 2))
	if err != nil {
		t.Fatalf("list visible failed: %v", err)
	}
	if page != 1 {
		t.Fatalf("non-positive page should clamp to 1, got %d", page)
	}
}

func TestGetVisibleRespectsViewer(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createTestUser(t, db, "writer")
	other := createTestUser(t, db, "reader")
	category := createTestCategory(t, db, "published", true)

	draft := createTestPost(t, repo, author.ID, &category.ID, time.Now().Add(-time.Hour), false)

	got, err := repo.GetVisible(draft.ID, author.ID)
	if err != nil {
		t.Fatalf("get as author failed: %v", err)
	}
	if got == nil || got.ID != draft.ID {
		t.Fatalf("author should see own draft")
	}

	got, err = repo.GetVisible(draft.ID, other.ID)
	if err != nil {
		t.Fatalf("get as other failed: %v", err)
	}
	if got != nil {
		t.Fatalf("draft should be invisible to others")
	}

	got, err = repo.GetVisible(draft.ID, 0)
	if err != nil {
		t.Fatalf("get as anonymous failed: %v", err)
	}
	if got != nil {
		t.Fatalf("draft should be invisible to anonymous viewers")
	}
}

func TestListVisibleInjectsCommentCount(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createTestUser(t, db, "writer")
	category := createTestCategory(t, db, "published", true)
	post := createTestPost(t, repo, author.ID, &category.ID, time.Now().Add(-time.Hour), true)

	for i := 0; i < 3; i++ {
		comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "c"}
		if err := db.Create(comment).Error; err != nil {
			t.Fatalf("create comment failed: %v", err)
		}
	}

	posts, _, _, err := repo.ListVisible(FeedScope(1, 10))
	if err != nil {
		t.Fatalf("list visible failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("posts want 1 got %d", len(posts))
	}
	if posts[0].CommentCount != 3 {
		t.Fatalf("comment_count want 3 got %d", posts[0].CommentCount)
	}
}

func TestDeletePostRemovesComments(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createTestUser(t, db, "writer")
	category := createTestCategory(t, db, "published", true)
	post := createTestPost(t, repo, author.ID, &category.ID, time.Now().Add(-time.Hour), true)

	comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "c"}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("delete post failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count comments failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("comments should be removed with the post, got %d", count)
	}
}

func TestUnpublishingCategoryHidesPostsImmediately(t *testing.T) {
	repo, db := setupPostRepositoryTest(t)
	author := createTestUser(t, db, "writer")
	category := createTestCategory(t, db, "walks", true)
	post := createTestPost(t, repo, author.ID, &category.ID, time.Now().Add(-time.Hour), true)

	_, total, _, err := repo.ListVisible(FeedScope(1, 10))
	if err != nil {
		t.Fatalf("list feed failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("feed before unpublish want 1 got %d", total)
	}

	if err := db.Model(&models.Category{}).Where("id = ?", category.ID).Update("is_published", false).Error; err != nil {
		t.Fatalf("unpublish category failed: %v", err)
	}

	// 可见性逐请求计算，分类下线后下一次读取立即生效
	_, total, _, err = repo.ListVisible(FeedScope(1, 10))
	if err != nil {
		t.Fatalf("list feed failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("feed after unpublish want 0 got %d", total)
	}

	got, err := repo.GetVisible(post.ID, 0)
	if err != nil {
		t.Fatalf("get visible failed: %v", err)
	}
	if got != nil {
		t.Fatalf("anonymous viewer should lose detail access after unpublish")
	}
	if got, err = repo.GetVisible(post.ID, author.ID); err != nil || got == nil {
		t.Fatalf("author should keep seeing own post, got=%v err=%v", got, err)
	}
}
