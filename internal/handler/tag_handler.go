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

// TagHandler 标签处理器
type TagHandler struct {
	tagService *service.TagService
}

// NewTagHandler 创建标签处理器
func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// List 获取标签列表
// @Summary 获取当前用户的标签列表，按创建顺序倒序
// @Tags 标签
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.TagResponse}
// @Router /api/tags [get]
func (h *TagHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	tags, err := h.tagService.List(userID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, tags)
}

// Get 获取标签详情
// @Summary 获取标签详情
// @Tags 标签
// @Produce json
// @Security BearerAuth
// @Param id path int true "标签ID"
// @Success 200 {object} utils.Response{data=dto.TagResponse}
// @Router /api/tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	tag, err := h.tagService.Get(uint(id), userID)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, tag)
}

// Create 创建标签
// @Summary 创建标签
// @Tags 标签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTagRequest true "标签信息"
// @Success 201 {object} utils.Response{data=dto.TagResponse}
// @Router /api/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatBindingError(err))
		return
	}

	tag, err := h.tagService.Create(userID, &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "创建成功", tag)
}

// Update 重命名标签
// @Summary 重命名标签
// @Tags 标签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "标签ID"
// @Param request body dto.UpdateTagRequest true "标签信息"
// @Success 200 {object} utils.Response{data=dto.TagResponse}
// @Router /api/tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.FormatBindingError(err))
		return
	}

	tag, err := h.tagService.Update(uint(id), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", tag)
}

// Delete 删除标签
// @Summary 删除标签，关联的菜谱不受影响
// @Tags 标签
// @Security BearerAuth
// @Param id path int true "标签ID"
// @Success 204
// @Router /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	if err := h.tagService.Delete(uint(id), userID); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.NoContentResponse(c)
}
