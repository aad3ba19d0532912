package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/middleware"
	"emperor_bespoke_v1/internal/service"
)

// DesignController 定制方案
type DesignController struct {
	designSvc *service.DesignService
}

func NewDesignController(designSvc *service.DesignService) *DesignController {
	return &DesignController{designSvc: designSvc}
}

// CreateDesign 保存定制方案
func (c *DesignController) CreateDesign(ctx *gin.Context) {
	var req dto.DesignReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	d, err := c.designSvc.CreateDesign(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, d)
}

// GetDesign 查询方案（公开方案任何人可看）
func (c *DesignController) GetDesign(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	d, err := c.designSvc.GetDesign(ctx.Request.Context(), middleware.CurrentUserID(ctx), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, d)
}

// ListMyDesigns 当前用户的全部方案
func (c *DesignController) ListMyDesigns(ctx *gin.Context) {
	list, err := c.designSvc.ListMyDesigns(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// ListPublicDesigns 公开方案橱窗
func (c *DesignController) ListPublicDesigns(ctx *gin.Context) {
	list, err := c.designSvc.ListPublicDesigns(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// UpdateDesign 更新方案
func (c *DesignController) UpdateDesign(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.DesignUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	d, err := c.designSvc.UpdateDesign(ctx.Request.Context(), middleware.CurrentUserID(ctx), id, &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, d)
}

// DeleteDesign 删除方案
func (c *DesignController) DeleteDesign(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.designSvc.DeleteDesign(ctx.Request.Context(), middleware.CurrentUserID(ctx), id); err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
