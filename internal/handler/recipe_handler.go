package handler

import (
	"errors"
	"strconv"

	"github.com/matpvl/recipe-api/internal/dto"
	"github.com/matpvl/recipe-api/internal/middleware"
	"github.com/matpvl/recipe-api/internal/service"
	"github.com/matpvl/recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RecipeHandler 菜谱处理器
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler 创建菜谱处理器
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// List 获取菜谱列表
// @Summary 获取当前用户的菜谱列表，按创建顺序倒序
// @Tags 菜谱
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.RecipeResponse}
// @Router /api/recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	recipes, err := h.recipeService.List(userID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, recipes)
}

// Get 获取菜谱详情
// @Summary 获取菜谱详情
// @Tags 菜谱
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 200 {object} utils.Response{data=dto.RecipeDetailResponse}
// @Router /api/recipes/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	recipe, err := h.recipeService.Get(uint(id), userID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, recipe)
}

// Create 创建菜谱
// @Summary 创建菜谱
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRecipeRequest true "菜谱信息"
// @Success 201 {object} utils.Response{data=dto.RecipeDetailResponse}
// @Router /api/recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatBindingError(err))
		return
	}

	recipe, err := h.recipeService.Create(userID, &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "创建成功", recipe)
}

// Update 完整更新菜谱
// @Summary 完整更新菜谱，标题、时长、价格必须全部提交
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Param request body dto.UpdateRecipeRequest true "菜谱信息"
// @Success 200 {object} utils.Response{data=dto.RecipeDetailResponse}
// @Router /api/recipes/{id} [put]
func (h *RecipeHandler) Update(c *gin.Context) {
	h.update(c, true)
}

// PartialUpdate 部分更新菜谱
// @Summary 部分更新菜谱，任意字段子集均可提交
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Param request body dto.UpdateRecipeRequest true "菜谱信息"
// @Success 200 {object} utils.Response{data=dto.RecipeDetailResponse}
// @Router /api/recipes/{id} [patch]
func (h *RecipeHandler) PartialUpdate(c *gin.Context) {
	h.update(c, false)
}

// update 更新菜谱的公共路径
func (h *RecipeHandler) update(c *gin.Context, full bool) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatBindingError(err))
		return
	}

	recipe, err := h.recipeService.Update(uint(id), userID, &req, full)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", recipe)
}

// Delete 删除菜谱
// @Summary 删除菜谱
// @Tags 菜谱
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 204
// @Router /api/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.recipeService.Delete(uint(id), userID); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.NoContentResponse(c)
}
