package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator 向gin的绑定验证器注册自定义规则
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("beforetoday", validateBeforeToday)
	}
}

// validateBeforeToday 验证日期字符串不晚于当前日期
func validateBeforeToday(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		// 格式错误交给datetime规则报告
		return true
	}

	return !date.After(time.Now())
}

// FormatBindingError 将绑定错误格式化为字段级提示
func FormatBindingError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var messages []string
	for _, e := range validationErrors {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s是必填字段", field)
		case "min":
			message = fmt.Sprintf("%s长度不能小于%s", field, param)
		case "max":
			message = fmt.Sprintf("%s长度不能大于%s", field, param)
		case "email":
			message = fmt.Sprintf("%s必须是有效的邮箱地址", field)
		case "gte":
			message = fmt.Sprintf("%s不能小于%s", field, param)
		case "datetime":
			message = fmt.Sprintf("%s必须是%s格式的日期", field, param)
		case "beforetoday":
			message = fmt.Sprintf("%s不能晚于当前日期", field)
		default:
			message = fmt.Sprintf("%s验证失败: %s", field, tag)
		}

		messages = append(messages, message)
	}

	return strings.Join(messages, "; ")
}
