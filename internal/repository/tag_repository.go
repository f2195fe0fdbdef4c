package repository

import (
	"github.com/matpvl/recipe-api/internal/models"

	"gorm.io/gorm"
)

// TagRepository 标签数据访问层
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签Repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create 创建标签
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByIDAndUserID 在用户范围内根据ID获取标签
func (r *TagRepository) GetByIDAndUserID(id uint, userID uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListByUserID 获取用户的标签列表，按创建顺序倒序
func (r *TagRepository) ListByUserID(userID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&tags).Error
	return tags, err
}

// ExistsByNameAndUserID 检查用户是否已有同名标签
func (r *TagRepository) ExistsByNameAndUserID(name string, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Where("user_id = ? AND name = ?", userID, name).Count(&count).Error
	return count > 0, err
}

// Update 更新标签
func (r *TagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete 删除标签及其菜谱关联行，不删除菜谱本身
func (r *TagRepository) Delete(tag *models.Tag) error {
	return r.db.Select("Recipes").Delete(tag).Error
}
