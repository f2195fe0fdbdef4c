package handler

import (
	"errors"

	"github.com/matpvl/recipe-api/internal/dto"
	"github.com/matpvl/recipe-api/internal/service"
	"github.com/matpvl/recipe-api/internal/utils"
	"github.com/matpvl/recipe-api/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService  *service.AuthService
	loginLimiter *redis_limiter.RedisLimiter
}

// NewAuthHandler 创建认证处理器，loginLimiter为nil时不启用登录限流
func NewAuthHandler(authService *service.AuthService, loginLimiter *redis_limiter.RedisLimiter) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// Register 用户注册
// @Summary 用户注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "注册信息"
// @Success 201 {object} utils.Response{data=dto.UserResponse}
// @Router /api/users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatBindingError(err))
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "注册成功", user)
}

// Token 获取访问Token
// @Summary 用邮箱密码换取Token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "登录信息"
// @Success 200 {object} utils.Response{data=dto.TokenResponse}
// @Router /api/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatBindingError(err))
		return
	}

	// 限制同一邮箱+IP的尝试频率
	limiterKey := req.Email + ":" + c.ClientIP()
	if h.loginLimiter != nil {
		allowed, err := h.loginLimiter.Allow(c.Request.Context(), limiterKey)
		if err == nil && !allowed {
			utils.TooManyRequests(c, "尝试次数过多，请稍后再试")
			return
		}
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.Unauthorized(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	if h.loginLimiter != nil {
		_ = h.loginLimiter.Reset(c.Request.Context(), limiterKey)
	}

	utils.SuccessWithMessage(c, "登录成功", resp)
}

// Logout 用户登出
// @Summary 用户登出
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// JWT是无状态的,登出只需客户端删除Token
	utils.SuccessWithMessage(c, "登出成功", nil)
}
