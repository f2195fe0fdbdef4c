package handler

import (
	"errors"

	"github.com/matpvl/recipe-api/internal/dto"
	"github.com/matpvl/recipe-api/internal/middleware"
	"github.com/matpvl/recipe-api/internal/service"
	"github.com/matpvl/recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户信息处理器
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 创建用户信息处理器
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetMe 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.UserResponse}
// @Router /api/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	user, err := h.userService.GetMe(userID)
	if err != nil {
		utils.NotFound(c, err.Error())
		return
	}

	utils.SuccessResponse(c, user)
}

// UpdateMe 更新当前用户信息
// @Summary 更新当前用户信息
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "用户信息"
// @Success 200 {object} utils.Response{data=dto.UserResponse}
// @Router /api/users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatBindingError(err))
		return
	}

	user, err := h.userService.UpdateMe(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", user)
}
