package models

import "time"

// Location 地点表
// 说明：地点仅作为文章的附加标注，其发布状态不参与文章可见性判定。
type Location struct {
	ID          uint      `gorm:"primarykey" json:"id"`                   // 主键
	Name        string    `gorm:"not null" json:"name"`                   // 地点名称
	IsPublished bool      `gorm:"default:true;index" json:"is_published"` // 是否发布
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                             // 更新时间
}

// TableName 指定表名
func (Location) TableName() string {
	return "locations"
}
