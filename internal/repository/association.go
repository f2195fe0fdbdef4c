package repository

import (
	"errors"

	"github.com/matpvl/recipe-api/internal/models"

	"gorm.io/gorm"
)

// resolveTags 按提交顺序将标签名解析为当前用户的标签行
// 先在用户范围内查找，不存在则创建；同一请求中的重复名称只解析一次。
// 并发创建同名标签时唯一索引 idx_tags_user_name 会让后到的插入失败，
// 此时重新查询读取竞争胜者的行。
// 必须在事务内调用，保证菜谱与标签关联作为一个单元提交。
func resolveTags(tx *gorm.DB, userID uint, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		var tag models.Tag
		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
		if err == nil {
			tags = append(tags, tag)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		tag = models.Tag{Name: name, UserID: userID}
		if createErr := tx.Create(&tag).Error; createErr != nil {
			// 唯一索引冲突：另一个请求已创建，重查即可
			if findErr := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error; findErr != nil {
				return nil, createErr
			}
		}

		tags = append(tags, tag)
	}

	return tags, nil
}
