package repository

import (
	"github.com/matpvl/recipe-api/internal/models"

	"gorm.io/gorm"
)

// RecipeRepository 菜谱数据访问层
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository 创建菜谱Repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// CreateWithTags 创建菜谱并解析标签关联，整体在一个事务中提交
func (r *RecipeRepository) CreateWithTags(recipe *models.Recipe, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		if len(tagNames) == 0 {
			return nil
		}

		tags, err := resolveTags(tx, recipe.UserID, tagNames)
		if err != nil {
			return err
		}

		if err := tx.Model(recipe).Association("Tags").Append(&tags); err != nil {
			return err
		}

		recipe.Tags = tags
		return nil
	})
}

// UpdateWithTags 更新菜谱字段，tagNames非nil时清空并重建标签关联
// tagNames为nil表示请求未携带标签字段，保持现有关联不变
func (r *RecipeRepository) UpdateWithTags(recipe *models.Recipe, tagNames *[]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}

		if tagNames == nil {
			return nil
		}

		if len(*tagNames) == 0 {
			if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
				return err
			}
			recipe.Tags = []models.Tag{}
			return nil
		}

		tags, err := resolveTags(tx, recipe.UserID, *tagNames)
		if err != nil {
			return err
		}

		if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
			return err
		}

		recipe.Tags = tags
		return nil
	})
}

// GetByIDAndUserID 在用户范围内根据ID获取菜谱
func (r *RecipeRepository) GetByIDAndUserID(id uint, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Tags").Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListByUserID 获取用户的菜谱列表，按创建顺序倒序
func (r *RecipeRepository) ListByUserID(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Preload("Tags").Where("user_id = ?", userID).Order("id DESC").Find(&recipes).Error
	return recipes, err
}

// Delete 删除菜谱及其标签关联行，不删除标签本身
func (r *RecipeRepository) Delete(recipe *models.Recipe) error {
	return r.db.Select("Tags").Delete(recipe).Error
}
