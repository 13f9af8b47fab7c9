package main

import (
	"time"

	"github.com/inkwell-next/internal/config"
	"github.com/inkwell-next/internal/logger"
	"github.com/inkwell-next/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{
			Title:       "城市漫步",
			Description: "记录走街串巷的见闻",
			Slug:        "city-walks",
			IsPublished: true,
		},
		{
			Title:       "山野日记",
			Description: "徒步与露营的路线记录",
			Slug:        "trail-notes",
			IsPublished: true,
		},
		{
			Title:       "深夜食堂",
			Description: "小馆子与家常菜",
			Slug:        "late-night-eats",
			IsPublished: true,
		},
		{
			Title:       "内测栏目",
			Description: "尚未对外的栏目",
			Slug:        "drafts-only",
			IsPublished: false,
		},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"city-walks", "trail-notes", "late-night-eats"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	cityWalksID := categoryIDs["city-walks"]
	trailNotesID := categoryIDs["trail-notes"]
	lateNightID := categoryIDs["late-night-eats"]

	// 添加地点
	locations := []models.Location{
		{Name: "北京", IsPublished: true},
		{Name: "上海", IsPublished: true},
		{Name: "莫干山", IsPublished: true},
	}
	locationIDs := map[string]uint{}
	for _, loc := range locations {
		var existing models.Location
		if err := models.DB.Where("name = ?", loc.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&loc).Error; err != nil {
				stdLog.Printf("Failed to create location %s: %v", loc.Name, err)
				continue
			}
			stdLog.Printf("Created location: %s", loc.Name)
			locationIDs[loc.Name] = loc.ID
		} else {
			locationIDs[existing.Name] = existing.ID
			stdLog.Printf("Location already exists: %s", loc.Name)
		}
	}

	// 添加演示用户
	users := []struct {
		Username  string
		Email     string
		Password  string
		FirstName string
		LastName  string
	}{
		{Username: "linzhou", Email: "linzhou@example.com", Password: "Demo-Pass-1", FirstName: "周", LastName: "林"},
		{Username: "amber", Email: "amber@example.com", Password: "Demo-Pass-2", FirstName: "Amber", LastName: "Shen"},
	}
	userIDs := map[string]uint{}
	for _, u := range users {
		var existing models.User
		if err := models.DB.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			userIDs[existing.Username] = existing.ID
			stdLog.Printf("User already exists: %s", u.Username)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", u.Username, err)
			continue
		}
		user := models.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: string(hash),
			FirstName:    u.FirstName,
			LastName:     u.LastName,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user %s: %v", u.Username, err)
			continue
		}
		userIDs[user.Username] = user.ID
		stdLog.Printf("Created user: %s", u.Username)
	}
	linzhouID := userIDs["linzhou"]
	amberID := userIDs["amber"]
	if linzhouID == 0 || amberID == 0 {
		stdLog.Printf("Demo users missing, skip post seeding")
		return
	}

	now := time.Now()
	posts := []models.Post{
		{
			Title:       "胡同里的早市",
			Text:        "清晨六点的鼓楼东大街，豆汁摊刚支起来。摊主说他在这条街上摆了三十年，见过太多搬来又搬走的人。",
			PubDate:     now.Add(-72 * time.Hour),
			IsPublished: true,
			AuthorID:    linzhouID,
			CategoryID:  &cityWalksID,
		},
		{
			Title:       "莫干山两日徒步",
			Text:        "从劳岭村出发，沿竹海古道上行。第一天宿半山民宿，第二天清晨看云海，下山时膝盖已经不是自己的了。",
			PubDate:     now.Add(-48 * time.Hour),
			IsPublished: true,
			AuthorID:    amberID,
			CategoryID:  &trailNotesID,
		},
		{
			Title:       "凌晨两点的馄饨摊",
			Text:        "加完班出来，巷口那家馄饨摊还亮着灯。老板娘记得我不要香菜，这比什么会员系统都好用。",
			PubDate:     now.Add(-24 * time.Hour),
			IsPublished: true,
			AuthorID:    linzhouID,
			CategoryID:  &lateNightID,
		},
		{
			Title:       "下周的城市骑行计划",
			Text:        "准备沿苏州河骑到外白渡桥，路线还在画，发布时间定在下周一早上。",
			PubDate:     now.Add(96 * time.Hour),
			IsPublished: true,
			AuthorID:    amberID,
			CategoryID:  &cityWalksID,
		},
		{
			Title:       "还没写完的草稿",
			Text:        "这篇先存着，改天再补。",
			PubDate:     now.Add(-12 * time.Hour),
			IsPublished: false,
			AuthorID:    linzhouID,
			CategoryID:  &lateNightID,
		},
	}
	if id, ok := locationIDs["北京"]; ok {
		posts[0].LocationID = &id
	}
	if id, ok := locationIDs["莫干山"]; ok {
		posts[1].LocationID = &id
	}
	if id, ok := locationIDs["上海"]; ok {
		posts[3].LocationID = &id
	}

	postIDs := map[string]uint{}
	for i := range posts {
		post := posts[i]
		var existing models.Post
		if err := models.DB.Where("title = ? AND author_id = ?", post.Title, post.AuthorID).First(&existing).Error; err == nil {
			postIDs[existing.Title] = existing.ID
			stdLog.Printf("Post already exists: %s", post.Title)
			continue
		}
		if err := models.DB.Create(&post).Error; err != nil {
			stdLog.Printf("Failed to create post %s: %v", post.Title, err)
			continue
		}
		postIDs[post.Title] = post.ID
		stdLog.Printf("Created post: %s", post.Title)
	}

	// 添加评论
	comments := []struct {
		PostTitle string
		AuthorID  uint
		Text      string
	}{
		{PostTitle: "胡同里的早市", AuthorID: amberID, Text: "豆汁我至今没喝习惯，焦圈倒是可以。"},
		{PostTitle: "莫干山两日徒步", AuthorID: linzhouID, Text: "收藏了，十月想走同一条线。"},
		{PostTitle: "凌晨两点的馄饨摊", AuthorID: amberID, Text: "求坐标！"},
	}
	for _, cm := range comments {
		postID, ok := postIDs[cm.PostTitle]
		if !ok {
			continue
		}
		var existing models.Comment
		if err := models.DB.Where("post_id = ? AND author_id = ? AND text = ?", postID, cm.AuthorID, cm.Text).First(&existing).Error; err == nil {
			stdLog.Printf("Comment already exists on: %s", cm.PostTitle)
			continue
		}
		comment := models.Comment{PostID: postID, AuthorID: cm.AuthorID, Text: cm.Text}
		if err := models.DB.Create(&comment).Error; err != nil {
			stdLog.Printf("Failed to create comment on %s: %v", cm.PostTitle, err)
			continue
		}
		stdLog.Printf("Created comment on: %s", cm.PostTitle)
	}

	stdLog.Printf("Seed finished")
}
