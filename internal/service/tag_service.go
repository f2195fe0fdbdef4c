package service

import (
	"errors"
	"fmt"

	"github.com/matpvl/recipe-api/internal/dto"
	"github.com/matpvl/recipe-api/internal/models"
	"github.com/matpvl/recipe-api/internal/repository"

	"gorm.io/gorm"
)

// TagService 标签服务
type TagService struct {
	tagRepo *repository.TagRepository
}

// NewTagService 创建标签服务
func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{
		tagRepo: tagRepo,
	}
}

// List 获取当前用户的标签列表
func (s *TagService) List(userID uint) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	return toTagResponses(tags), nil
}

// Get 获取标签详情，其他用户的标签等同于不存在
func (s *TagService) Get(id uint, userID uint) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	return &dto.TagResponse{ID: tag.ID, Name: tag.Name}, nil
}

// Create 创建标签
func (s *TagService) Create(userID uint, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	exists, err := s.tagRepo.ExistsByNameAndUserID(req.Name, userID)
	if err != nil {
		return nil, fmt.Errorf("检查标签失败: %w", err)
	}
	if exists {
		return nil, ErrTagNameTaken
	}

	tag := &models.Tag{
		Name:   req.Name,
		UserID: userID,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("创建标签失败: %w", err)
	}

	return &dto.TagResponse{ID: tag.ID, Name: tag.Name}, nil
}

// Update 重命名标签
func (s *TagService) Update(id uint, userID uint, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	if req.Name != tag.Name {
		exists, err := s.tagRepo.ExistsByNameAndUserID(req.Name, userID)
		if err != nil {
			return nil, fmt.Errorf("检查标签失败: %w", err)
		}
		if exists {
			return nil, ErrTagNameTaken
		}
	}

	tag.Name = req.Name
	if err := s.tagRepo.Update(tag); err != nil {
		return nil, fmt.Errorf("更新标签失败: %w", err)
	}

	return &dto.TagResponse{ID: tag.ID, Name: tag.Name}, nil
}

// Delete 删除标签，关联的菜谱本身不受影响
func (s *TagService) Delete(id uint, userID uint) error {
	tag, err := s.tagRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	return s.tagRepo.Delete(tag)
}
