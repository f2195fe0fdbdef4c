package models

import (
	"time"
)

// Tag 标签模型，用于给菜谱分类
// (user_id, name) 上的唯一索引保证同一用户不会出现重名标签，
// 并发的查找或创建依赖该索引解决竞争
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_tags_user_name" json:"name"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_tags_user_name" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	User    User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipes []Recipe `gorm:"many2many:recipe_tags" json:"recipes,omitempty"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
