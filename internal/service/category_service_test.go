package service

import (
	"errors"
	"testing"
	"time"

	"github.com/inkwell-next/internal/repository"

	"gorm.io/gorm"
)

func newCategoryServiceForTest(t *testing.T) (*CategoryService, *PostService, *gorm.DB) {
	t.Helper()
	db := setupBlogTestDB(t)
	posts := repository.NewPostRepository(db)
	svc := NewCategoryService(repository.NewCategoryRepository(db), posts)
	postSvc := NewPostService(posts, repository.NewCategoryRepository(db), repository.NewLocationRepository(db))
	return svc, postSvc, db
}

func TestCategorySlugMustBeUnique(t *testing.T) {
	svc, _, _ := newCategoryServiceForTest(t)

	first, err := svc.Create(CategoryInput{Title: "城市漫步", Slug: "walks"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if !first.IsPublished {
		t.Fatalf("is_published should default to true")
	}

	if _, err := svc.Create(CategoryInput{Title: "重复", Slug: "walks"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("duplicate slug want ErrSlugExists got %v", err)
	}

	second, err := svc.Create(CategoryInput{Title: "山野", Slug: "trails"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := svc.Update(second.ID, CategoryInput{Title: "山野", Slug: "walks"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("update to taken slug want ErrSlugExists got %v", err)
	}
	// 更新保留自身 slug 不算冲突
	if _, err := svc.Update(second.ID, CategoryInput{Title: "山野日记", Slug: "trails"}); err != nil {
		t.Fatalf("update keeping own slug failed: %v", err)
	}
}

func TestCategoryDeleteBlockedWhenInUse(t *testing.T) {
	svc, postSvc, db := newCategoryServiceForTest(t)
	author := seedAuthor(t, db, "writer")

	category, err := svc.Create(CategoryInput{Title: "城市漫步", Slug: "walks"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	post, err := postSvc.Create(author.ID, PostInput{Title: "t", Text: "x", CategoryID: &category.ID, PubDate: time.Now()})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	if err := svc.Delete(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("delete in-use category want ErrCategoryInUse got %v", err)
	}

	if err := postSvc.Delete(post.ID, author.ID); err != nil {
		t.Fatalf("delete post failed: %v", err)
	}
	if err := svc.Delete(category.ID); err != nil {
		t.Fatalf("delete empty category failed: %v", err)
	}
	if err := svc.Delete(category.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing category want ErrNotFound got %v", err)
	}
}

func TestLocationDeleteBlockedWhenInUse(t *testing.T) {
	db := setupBlogTestDB(t)
	posts := repository.NewPostRepository(db)
	svc := NewLocationService(repository.NewLocationRepository(db), posts)
	postSvc := NewPostService(posts, repository.NewCategoryRepository(db), repository.NewLocationRepository(db))
	author := seedAuthor(t, db, "writer")

	location, err := svc.Create(LocationInput{Name: "北京"})
	if err != nil {
		t.Fatalf("create location failed: %v", err)
	}
	if _, err := postSvc.Create(author.ID, PostInput{Title: "t", Text: "x", LocationID: &location.ID, PubDate: time.Now()}); err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	if err := svc.Delete(location.ID); !errors.Is(err, ErrLocationInUse) {
		t.Fatalf("delete in-use location want ErrLocationInUse got %v", err)
	}
}

func TestCategoryListPublicHidesUnpublished(t *testing.T) {
	svc, _, _ := newCategoryServiceForTest(t)
	hidden := false
	if _, err := svc.Create(CategoryInput{Title: "公开", Slug: "open"}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := svc.Create(CategoryInput{Title: "内测", Slug: "closed", IsPublished: &hidden}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	categories, err := svc.ListPublic()
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if len(categories) != 1 || categories[0].Slug != "open" {
		t.Fatalf("public list should only hold published categories, got %+v", categories)
	}
}
