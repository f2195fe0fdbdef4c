package dto

// TagInput 菜谱请求中内嵌的标签描述
type TagInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateTagRequest 更新标签请求
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// TagResponse 标签响应
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
