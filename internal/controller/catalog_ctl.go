package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/service"
	"emperor_bespoke_v1/internal/storage"
)

// CatalogController 分类 / 商品 / 面料
type CatalogController struct {
	catalogSvc *service.CatalogService
}

func NewCatalogController(catalogSvc *service.CatalogService) *CatalogController {
	return &CatalogController{catalogSvc: catalogSvc}
}

// ==================== 分类 ====================

// CreateCategory 新建分类
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	cat, err := c.catalogSvc.CreateCategory(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, cat)
}

// ListCategories 分类列表，?active=true 仅返回启用分类
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	activeOnly, _ := strconv.ParseBool(ctx.Query("active"))

	list, err := c.catalogSvc.ListCategories(ctx.Request.Context(), activeOnly)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// GetCategory 按 ID 查分类
func (c *CatalogController) GetCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	cat, err := c.catalogSvc.GetCategory(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cat)
}

// GetCategoryBySlug 按 slug 查分类
func (c *CatalogController) GetCategoryBySlug(ctx *gin.Context) {
	cat, err := c.catalogSvc.GetCategoryBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cat)
}

// UpdateCategory 更新分类
func (c *CatalogController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CategoryUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	cat, err := c.catalogSvc.UpdateCategory(ctx.Request.Context(), id, &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cat)
}

// DeleteCategory 删除分类
func (c *CatalogController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogSvc.DeleteCategory(ctx.Request.Context(), id); err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ==================== 商品 ====================

// CreateProduct 新建商品
func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	var req dto.ProductReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	p, err := c.catalogSvc.CreateProduct(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// ListProducts 商品列表
// 查询参数: category（分类 ID）、featured、active
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	filter := storage.ProductFilter{}
	if v := ctx.Query("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的分类 ID"})
			return
		}
		filter.CategoryID = id
	}
	filter.FeaturedOnly, _ = strconv.ParseBool(ctx.Query("featured"))
	filter.ActiveOnly, _ = strconv.ParseBool(ctx.Query("active"))

	list, err := c.catalogSvc.ListProducts(ctx.Request.Context(), filter)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// GetProduct 按 ID 查商品
func (c *CatalogController) GetProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	p, err := c.catalogSvc.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// GetProductBySlug 按 slug 查商品
func (c *CatalogController) GetProductBySlug(ctx *gin.Context) {
	p, err := c.catalogSvc.GetProductBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// UpdateProduct 更新商品
func (c *CatalogController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ProductUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	p, err := c.catalogSvc.UpdateProduct(ctx.Request.Context(), id, &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// DeleteProduct 删除商品
func (c *CatalogController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogSvc.DeleteProduct(ctx.Request.Context(), id); err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ==================== 面料 ====================

// CreateFabric 新建面料
func (c *CatalogController) CreateFabric(ctx *gin.Context) {
	var req dto.FabricReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	f, err := c.catalogSvc.CreateFabric(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, f)
}

// ListFabrics 面料列表，?available=true 仅返回可选面料
func (c *CatalogController) ListFabrics(ctx *gin.Context) {
	availableOnly, _ := strconv.ParseBool(ctx.Query("available"))

	list, err := c.catalogSvc.ListFabrics(ctx.Request.Context(), availableOnly)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// GetFabric 按 ID 查面料
func (c *CatalogController) GetFabric(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	f, err := c.catalogSvc.GetFabric(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, f)
}

// UpdateFabric 更新面料
func (c *CatalogController) UpdateFabric(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.FabricUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	f, err := c.catalogSvc.UpdateFabric(ctx.Request.Context(), id, &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, f)
}
