package models

import (
	"time"
)

// User 用户模型，以邮箱作为登录标识
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Birthday     *time.Time `json:"birthday"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	IsStaff      bool       `gorm:"default:false" json:"is_staff"`
	IsSuperuser  bool       `gorm:"default:false" json:"is_superuser"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// 关联：删除用户时级联删除其菜谱和标签
	Recipes []Recipe `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
	Tags    []Tag    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
