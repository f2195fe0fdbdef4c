package service

import (
	"fmt"

	"github.com/matpvl/recipe-api/internal/config"
	"github.com/matpvl/recipe-api/internal/dto"
	"github.com/matpvl/recipe-api/internal/models"
	"github.com/matpvl/recipe-api/internal/repository"
	"github.com/matpvl/recipe-api/internal/utils"
)

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
	cfg        *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}

// Register 用户注册
func (s *AuthService) Register(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	// 验证邮箱是否已注册
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("检查邮箱失败: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// 哈希密码
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	// 创建用户，标志位一律取默认值，不信任请求体
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Birthday:     birthday,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Login 校验邮箱密码并签发Token
// 账号不存在、密码错误、账号被禁用均返回同一个错误
func (s *AuthService) Login(req *dto.TokenRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, nil
}

// InitAdmin 初始化超级管理员账户
func (s *AuthService) InitAdmin() error {
	if s.cfg.Admin.Email == "" {
		return nil
	}

	// 已存在超级管理员则跳过
	if admin, err := s.userRepo.GetSuperuser(); err == nil && admin != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(s.cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("密码哈希失败: %w", err)
	}

	name := s.cfg.Admin.Name
	if name == "" {
		name = "admin"
	}

	user := &models.User{
		Email:        s.cfg.Admin.Email,
		PasswordHash: hashedPassword,
		Name:         name,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("创建管理员失败: %w", err)
	}

	return nil
}
