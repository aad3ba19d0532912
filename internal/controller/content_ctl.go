package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/service"
)

// ContentController 橱窗内容（系列 / 顾客评价）
type ContentController struct {
	contentSvc *service.ContentService
}

func NewContentController(contentSvc *service.ContentService) *ContentController {
	return &ContentController{contentSvc: contentSvc}
}

// ==================== 系列 ====================

// CreateCollection 新建系列
func (c *ContentController) CreateCollection(ctx *gin.Context) {
	var req dto.CollectionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	col, err := c.contentSvc.CreateCollection(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, col)
}

// ListCollections 系列列表，?featured=true 仅返回主推系列
func (c *ContentController) ListCollections(ctx *gin.Context) {
	featuredOnly, _ := strconv.ParseBool(ctx.Query("featured"))

	list, err := c.contentSvc.ListCollections(ctx.Request.Context(), featuredOnly)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// GetCollection 按 ID 查系列
func (c *ContentController) GetCollection(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	col, err := c.contentSvc.GetCollection(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, col)
}

// GetCollectionBySlug 按 slug 查系列
func (c *ContentController) GetCollectionBySlug(ctx *gin.Context) {
	col, err := c.contentSvc.GetCollectionBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, col)
}

// ==================== 顾客评价 ====================

// CreateTestimonial 新建评价
func (c *ContentController) CreateTestimonial(ctx *gin.Context) {
	var req dto.TestimonialReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	t, err := c.contentSvc.CreateTestimonial(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

// ListTestimonials 评价列表，?featured=true 仅返回精选评价
func (c *ContentController) ListTestimonials(ctx *gin.Context) {
	featuredOnly, _ := strconv.ParseBool(ctx.Query("featured"))

	list, err := c.contentSvc.ListTestimonials(ctx.Request.Context(), featuredOnly)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// GetTestimonial 按 ID 查评价
func (c *ContentController) GetTestimonial(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	t, err := c.contentSvc.GetTestimonial(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, t)
}
