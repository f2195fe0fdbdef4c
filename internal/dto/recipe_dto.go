package dto

// CreateRecipeRequest 创建菜谱请求
// 不接受user_id字段，归属永远取自当前认证用户
type CreateRecipeRequest struct {
	Title       string     `json:"title" binding:"required"`
	TimeMinutes *int       `json:"time_minutes" binding:"required,gte=0"`
	Price       *float64   `json:"price" binding:"required,gte=0"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	Tags        []TagInput `json:"tags" binding:"omitempty,dive"`
}

// UpdateRecipeRequest 更新菜谱请求
// 全部使用指针字段区分"未提交"与"提交了零值"：
// Tags为nil表示不改动现有关联，指向空切片表示清空全部关联
type UpdateRecipeRequest struct {
	Title       *string     `json:"title"`
	TimeMinutes *int        `json:"time_minutes" binding:"omitempty,gte=0"`
	Price       *float64    `json:"price" binding:"omitempty,gte=0"`
	Description *string     `json:"description"`
	Link        *string     `json:"link"`
	Tags        *[]TagInput `json:"tags" binding:"omitempty,dive"`
}

// RecipeResponse 菜谱列表项响应
type RecipeResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	TimeMinutes int           `json:"time_minutes"`
	Price       float64       `json:"price"`
	Link        string        `json:"link"`
	Tags        []TagResponse `json:"tags"`
}

// RecipeDetailResponse 菜谱详情响应，在列表项字段之上增加描述
type RecipeDetailResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	TimeMinutes int           `json:"time_minutes"`
	Price       float64       `json:"price"`
	Link        string        `json:"link"`
	Tags        []TagResponse `json:"tags"`
	Description string        `json:"description"`
}

// TagNames 提取更新请求中的标签名列表，保持提交顺序
// 请求未携带tags字段时返回nil
func (r *UpdateRecipeRequest) TagNames() *[]string {
	if r.Tags == nil {
		return nil
	}

	names := make([]string, 0, len(*r.Tags))
	for _, t := range *r.Tags {
		names = append(names, t.Name)
	}
	return &names
}
