package service

import (
	"errors"
	"math"

	"github.com/matpvl/recipe-api/internal/dto"
	"github.com/matpvl/recipe-api/internal/models"
	"github.com/matpvl/recipe-api/internal/repository"

	"gorm.io/gorm"
)

// RecipeService 菜谱服务
type RecipeService struct {
	recipeRepo *repository.RecipeRepository
}

// NewRecipeService 创建菜谱服务
func NewRecipeService(recipeRepo *repository.RecipeRepository) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
	}
}

// Create 创建菜谱，归属强制为当前用户，请求体中的归属字段不生效
func (s *RecipeService) Create(userID uint, req *dto.CreateRecipeRequest) (*dto.RecipeDetailResponse, error) {
	if err := validatePrice(*req.Price); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: *req.TimeMinutes,
		Price:       *req.Price,
		Link:        req.Link,
		UserID:      userID,
	}

	names := make([]string, 0, len(req.Tags))
	for _, t := range req.Tags {
		names = append(names, t.Name)
	}

	if err := s.recipeRepo.CreateWithTags(recipe, names); err != nil {
		return nil, err
	}

	resp := toRecipeDetailResponse(recipe)
	return &resp, nil
}

// List 获取当前用户的菜谱列表
func (s *RecipeService) List(userID uint) ([]dto.RecipeResponse, error) {
	recipes, err := s.recipeRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RecipeResponse, len(recipes))
	for i := range recipes {
		responses[i] = toRecipeResponse(&recipes[i])
	}

	return responses, nil
}

// Get 获取菜谱详情，其他用户的菜谱等同于不存在
func (s *RecipeService) Get(id uint, userID uint) (*dto.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	resp := toRecipeDetailResponse(recipe)
	return &resp, nil
}

// Update 更新菜谱
// full为true时要求标题、时长、价格全部提交（PUT语义）
// 标签字段缺省保持现有关联，提交空列表则清空全部关联
func (s *RecipeService) Update(id uint, userID uint, req *dto.UpdateRecipeRequest, full bool) (*dto.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if full && (req.Title == nil || req.TimeMinutes == nil || req.Price == nil) {
		return nil, ErrMissingFields
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		recipe.Price = *req.Price
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}

	if err := s.recipeRepo.UpdateWithTags(recipe, req.TagNames()); err != nil {
		return nil, err
	}

	resp := toRecipeDetailResponse(recipe)
	return &resp, nil
}

// Delete 删除菜谱
func (s *RecipeService) Delete(id uint, userID uint) error {
	recipe, err := s.recipeRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepo.Delete(recipe)
}

// validatePrice 验证价格最多两位小数
// 列约束是decimal(5,2)，这里提前拦截避免静默截断
func validatePrice(price float64) error {
	cents := price * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9 {
		return ErrInvalidPrice
	}
	return nil
}

// toRecipeResponse 转换为列表项响应
func toRecipeResponse(recipe *models.Recipe) dto.RecipeResponse {
	return dto.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        toTagResponses(recipe.Tags),
	}
}

// toRecipeDetailResponse 转换为详情响应
func toRecipeDetailResponse(recipe *models.Recipe) dto.RecipeDetailResponse {
	return dto.RecipeDetailResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        toTagResponses(recipe.Tags),
		Description: recipe.Description,
	}
}

// toTagResponses 转换标签列表
func toTagResponses(tags []models.Tag) []dto.TagResponse {
	responses := make([]dto.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = dto.TagResponse{
			ID:   tag.ID,
			Name: tag.Name,
		}
	}
	return responses
}
