package models

import "time"

// Comment 评论表
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	Text      string    `gorm:"type:text;not null" json:"text"`  // 评论内容
	PostID    uint      `gorm:"not null;index" json:"post_id"`   // 所属文章（文章删除时级联删除）
	AuthorID  uint      `gorm:"not null;index" json:"author_id"` // 评论作者
	CreatedAt time.Time `gorm:"index" json:"created_at"`         // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                      // 更新时间

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
