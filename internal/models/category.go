package models

import "time"

// Category 分类表
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Title       string    `gorm:"not null" json:"title"`                  // 名称
	Description string    `gorm:"type:text" json:"description"`           // 描述
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`       // 唯一标识（URL 安全）
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布（下线后该分类下文章对非作者不可见）
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                             // 更新时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
