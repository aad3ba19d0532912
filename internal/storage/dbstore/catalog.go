package dbstore

import (
	"context"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// ==================== 分类 ====================

func (s *Store) CreateCategory(ctx context.Context, c *model.ProductCategory) error {
	return wrapErr("product_categories", s.db.WithContext(ctx).Create(c).Error)
}

func (s *Store) GetCategory(ctx context.Context, id int64) (*model.ProductCategory, error) {
	var c model.ProductCategory
	err := s.db.WithContext(ctx).First(&c, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (*model.ProductCategory, error) {
	var c model.ProductCategory
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, activeOnly bool) ([]model.ProductCategory, error) {
	query := s.db.WithContext(ctx).Model(&model.ProductCategory{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var list []model.ProductCategory
	err := query.Order("id ASC").Find(&list).Error
	return list, err
}

func (s *Store) UpdateCategory(ctx context.Context, id int64, update *model.CategoryUpdate) (*model.ProductCategory, error) {
	changes := update.Changes()
	if len(changes) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.ProductCategory{}).
			Where("id = ?", id).
			Updates(changes).Error
		if err != nil {
			return nil, wrapErr("product_categories", err)
		}
	}
	return s.GetCategory(ctx, id)
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&model.ProductCategory{}, id)
	if res.Error != nil {
		return false, wrapErr("product_categories", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ==================== 商品 ====================

func (s *Store) CreateProduct(ctx context.Context, p *model.Product) error {
	return wrapErr("products", s.db.WithContext(ctx).Create(p).Error)
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := s.db.WithContext(ctx).First(&p, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	err := s.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListProducts(ctx context.Context, filter storage.ProductFilter) ([]model.Product, error) {
	query := s.db.WithContext(ctx).Model(&model.Product{})
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	var list []model.Product
	err := query.Order("id ASC").Find(&list).Error
	return list, err
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, update *model.ProductUpdate) (*model.Product, error) {
	changes := update.Changes()
	if len(changes) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.Product{}).
			Where("id = ?", id).
			Updates(changes).Error
		if err != nil {
			return nil, wrapErr("products", err)
		}
	}
	return s.GetProduct(ctx, id)
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	// 被订单明细或定制方案引用时，数据库外键约束会拒绝删除
	res := s.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return false, wrapErr("products", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ==================== 面料 ====================

func (s *Store) CreateFabric(ctx context.Context, f *model.Fabric) error {
	if f.MinQuantity <= 0 {
		f.MinQuantity = 1
	}
	return wrapErr("fabrics", s.db.WithContext(ctx).Create(f).Error)
}

func (s *Store) GetFabric(ctx context.Context, id int64) (*model.Fabric, error) {
	var f model.Fabric
	err := s.db.WithContext(ctx).First(&f, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) ListFabrics(ctx context.Context, availableOnly bool) ([]model.Fabric, error) {
	query := s.db.WithContext(ctx).Model(&model.Fabric{})
	if availableOnly {
		query = query.Where("available = ?", true)
	}
	var list []model.Fabric
	err := query.Order("id ASC").Find(&list).Error
	return list, err
}

func (s *Store) UpdateFabric(ctx context.Context, id int64, update *model.FabricUpdate) (*model.Fabric, error) {
	changes := update.Changes()
	if len(changes) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.Fabric{}).
			Where("id = ?", id).
			Updates(changes).Error
		if err != nil {
			return nil, wrapErr("fabrics", err)
		}
	}
	return s.GetFabric(ctx, id)
}
