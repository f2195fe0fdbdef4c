package dto

// CreateUserRequest 注册请求
// 不接受is_active/is_staff等标志位，避免越权
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
	Name     string `json:"name" binding:"required"`
	Birthday string `json:"birthday" binding:"omitempty,datetime=2006-01-02,beforetoday"`
}

// UpdateUserRequest 更新个人信息请求，任意字段子集均可提交
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Password *string `json:"password" binding:"omitempty,min=5"`
	Birthday *string `json:"birthday" binding:"omitempty,datetime=2006-01-02,beforetoday"`
}

// UserResponse 用户信息响应，永不包含密码
type UserResponse struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Birthday *string `json:"birthday"`
}
