package service

import "errors"

// 服务层哨兵错误，handler据此映射HTTP状态码
var (
	// ErrInvalidCredentials 登录失败统一返回，不暴露账号是否存在或被禁用
	ErrInvalidCredentials = errors.New("邮箱或密码错误")

	ErrEmailTaken     = errors.New("邮箱已被注册")
	ErrUserNotFound   = errors.New("用户不存在")
	ErrRecipeNotFound = errors.New("菜谱不存在")
	ErrTagNotFound    = errors.New("标签不存在")
	ErrTagNameTaken   = errors.New("同名标签已存在")
	ErrInvalidPrice   = errors.New("价格最多保留两位小数")
	ErrFutureBirthday = errors.New("生日不能晚于当前日期")
	ErrMissingFields  = errors.New("完整更新必须提交标题、时长和价格")
)
