package models

import "time"

// Post 文章表
type Post struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Title       string    `gorm:"not null" json:"title"`                  // 标题
	Text        string    `gorm:"type:text;not null" json:"text"`         // 正文
	PubDate     time.Time `gorm:"index;not null" json:"pub_date"`         // 发布时间（可设为将来时间，实现定时发布）
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`        // 作者ID（创建后不可变更）
	CategoryID  *uint     `gorm:"index" json:"category_id"`               // 分类ID（可为空）
	LocationID  *uint     `gorm:"index" json:"location_id"`               // 地点ID（可为空）
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                             // 更新时间

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category *Category `json:"category,omitempty"`
	Location *Location `json:"location,omitempty"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	// CommentCount 评论数（列表查询时由子查询注入，不落库）
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}
