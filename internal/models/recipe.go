package models

import (
	"time"
)

// Recipe 菜谱模型
type Recipe struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	TimeMinutes int       `gorm:"not null" json:"time_minutes"`
	Price       float64   `gorm:"type:decimal(5,2);not null" json:"price"`
	Link        string    `gorm:"size:255" json:"link"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联：recipe_tags 为多对多关联表
	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tags []Tag `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
}

// TableName 指定表名
func (Recipe) TableName() string {
	return "recipes"
}
