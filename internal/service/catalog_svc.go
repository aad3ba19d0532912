package service

import (
	"context"
	"fmt"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// CatalogService 分类 / 商品 / 面料
type CatalogService struct {
	store storage.Store
}

// NewCatalogService 工厂方法
func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ==================== 分类 ====================

// CreateCategory 新建分类
func (s *CatalogService) CreateCategory(ctx context.Context, req *dto.CategoryReq) (*model.ProductCategory, error) {
	c := &model.ProductCategory{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Slug:        req.Slug,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCategory 按 ID 查分类
func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*model.ProductCategory, error) {
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// GetCategoryBySlug 按 slug 查分类
func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*model.ProductCategory, error) {
	c, err := s.store.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// ListCategories 分类列表
func (s *CatalogService) ListCategories(ctx context.Context, activeOnly bool) ([]model.ProductCategory, error) {
	return s.store.ListCategories(ctx, activeOnly)
}

// UpdateCategory 更新分类
// 改父分类时校验不成环（parent 不可指向自身或后代）
func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, req *dto.CategoryUpdateReq) (*model.ProductCategory, error) {
	if req.ParentID != nil {
		if err := s.checkCategoryCycle(ctx, id, *req.ParentID); err != nil {
			return nil, err
		}
	}

	update := &model.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	}
	c, err := s.store.UpdateCategory(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// DeleteCategory 删除分类（仍被商品或子分类引用时由存储层拒绝）
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// checkCategoryCycle 沿 parent 链向上走，禁止 id 出现在新父分类的祖先链上
func (s *CatalogService) checkCategoryCycle(ctx context.Context, id, newParentID int64) error {
	if newParentID == id {
		return fmt.Errorf("%w: 分类不能以自身为父分类", ErrInvalid)
	}
	cur := newParentID
	for cur != 0 {
		parent, err := s.store.GetCategory(ctx, cur)
		if err != nil {
			return err
		}
		if parent == nil {
			return nil // 不存在的父分类由存储层外键约束拦截
		}
		if parent.ID == id {
			return fmt.Errorf("%w: 父分类不能是自身的后代", ErrInvalid)
		}
		if parent.ParentID == nil {
			return nil
		}
		cur = *parent.ParentID
	}
	return nil
}

// ==================== 商品 ====================

// CreateProduct 新建商品
func (s *CatalogService) CreateProduct(ctx context.Context, req *dto.ProductReq) (*model.Product, error) {
	if req.SalePrice != nil && *req.SalePrice >= req.BasePrice {
		return nil, fmt.Errorf("%w: 特价必须低于原价", ErrInvalid)
	}

	p := &model.Product{
		CategoryID:           req.CategoryID,
		Name:                 req.Name,
		Description:          req.Description,
		BasePrice:            req.BasePrice,
		SalePrice:            req.SalePrice,
		Stock:                req.Stock,
		SKU:                  req.SKU,
		Slug:                 req.Slug,
		Image:                req.Image,
		Features:             req.Features,
		Tags:                 req.Tags,
		CustomizationOptions: []byte(req.CustomizationOptions),
		Featured:             req.Featured,
		IsActive:             true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := s.store.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct 按 ID 查商品
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// GetProductBySlug 按 slug 查商品
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	p, err := s.store.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// ListProducts 商品列表（可按分类 / 主推 / 上架过滤）
func (s *CatalogService) ListProducts(ctx context.Context, filter storage.ProductFilter) ([]model.Product, error) {
	return s.store.ListProducts(ctx, filter)
}

// UpdateProduct 更新商品
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, req *dto.ProductUpdateReq) (*model.Product, error) {
	update := &model.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		Image:       req.Image,
		Features:    req.Features,
		Tags:        req.Tags,
		Featured:    req.Featured,
		IsActive:    req.IsActive,
	}
	if req.CustomizationOptions != nil {
		update.CustomizationOptions = []byte(req.CustomizationOptions)
	}
	p, err := s.store.UpdateProduct(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// DeleteProduct 删除商品（仍被订单或定制方案引用时由存储层拒绝）
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ==================== 面料 ====================

// CreateFabric 新建面料
func (s *CatalogService) CreateFabric(ctx context.Context, req *dto.FabricReq) (*model.Fabric, error) {
	f := &model.Fabric{
		Name:        req.Name,
		Type:        req.Type,
		Color:       req.Color,
		Pattern:     req.Pattern,
		Price:       req.Price,
		Composition: req.Composition,
		Origin:      req.Origin,
		Image:       req.Image,
		Available:   true,
		LeadTime:    req.LeadTime,
		MinQuantity: req.MinQuantity,
	}
	if req.Available != nil {
		f.Available = *req.Available
	}
	if err := s.store.CreateFabric(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// GetFabric 按 ID 查面料
func (s *CatalogService) GetFabric(ctx context.Context, id int64) (*model.Fabric, error) {
	f, err := s.store.GetFabric(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	return f, nil
}

// ListFabrics 面料列表
func (s *CatalogService) ListFabrics(ctx context.Context, availableOnly bool) ([]model.Fabric, error) {
	return s.store.ListFabrics(ctx, availableOnly)
}

// UpdateFabric 更新面料
func (s *CatalogService) UpdateFabric(ctx context.Context, id int64, req *dto.FabricUpdateReq) (*model.Fabric, error) {
	update := &model.FabricUpdate{
		Name:        req.Name,
		Type:        req.Type,
		Color:       req.Color,
		Pattern:     req.Pattern,
		Price:       req.Price,
		Composition: req.Composition,
		Origin:      req.Origin,
		Image:       req.Image,
		Available:   req.Available,
		LeadTime:    req.LeadTime,
		MinQuantity: req.MinQuantity,
	}
	f, err := s.store.UpdateFabric(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	return f, nil
}
