package service

import (
	"fmt"
	"time"

	"github.com/matpvl/recipe-api/internal/dto"
	"github.com/matpvl/recipe-api/internal/models"
	"github.com/matpvl/recipe-api/internal/repository"
	"github.com/matpvl/recipe-api/internal/utils"
)

// UserService 用户信息服务
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService 创建用户信息服务
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetMe 获取当前用户信息
func (s *UserService) GetMe(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateMe 更新当前用户信息，接受姓名、密码、生日的任意子集
// 提交了密码则重新哈希后替换原凭证
func (s *UserService) UpdateMe(userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("密码哈希失败: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	if req.Birthday != nil {
		birthday, err := parseBirthday(*req.Birthday)
		if err != nil {
			return nil, err
		}
		user.Birthday = birthday
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// parseBirthday 解析生日字符串并拒绝未来日期
// 绑定层已有同样的规则，这里兜底保证服务层单独调用时也成立
func parseBirthday(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	birthday, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("生日格式错误: %w", err)
	}

	if birthday.After(time.Now()) {
		return nil, ErrFutureBirthday
	}

	return &birthday, nil
}

// toUserResponse 转换为用户响应
func toUserResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}

	if user.Birthday != nil {
		birthday := user.Birthday.Format("2006-01-02")
		resp.Birthday = &birthday
	}

	return resp
}
