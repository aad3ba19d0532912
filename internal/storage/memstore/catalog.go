package memstore

import (
	"context"
	"time"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// ==================== 分类 ====================

func (s *Store) CreateCategory(ctx context.Context, c *model.ProductCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Slug == c.Slug {
			return storage.Duplicate("product_categories", "slug")
		}
	}
	if c.ParentID != nil {
		if _, ok := s.categories[*c.ParentID]; !ok {
			return storage.ForeignKey("product_categories", "parent_id")
		}
	}

	id := s.nextCategoryID
	s.nextCategoryID++
	stamp(&c.BaseModel, id, time.Now())

	s.categories[id] = cloneCategory(c)
	return nil
}

func (s *Store) GetCategory(ctx context.Context, id int64) (*model.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return cloneCategory(c), nil
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (*model.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return cloneCategory(c), nil
		}
	}
	return nil, nil
}

func (s *Store) ListCategories(ctx context.Context, activeOnly bool) ([]model.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.ProductCategory, 0)
	for _, c := range s.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		list = append(list, *cloneCategory(c))
	}
	sortByID(list, func(c *model.ProductCategory) int64 { return c.ID })
	return list, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id int64, update *model.CategoryUpdate) (*model.ProductCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	if update.ParentID != nil {
		if _, ok := s.categories[*update.ParentID]; !ok {
			return nil, storage.ForeignKey("product_categories", "parent_id")
		}
	}

	update.Apply(c)
	c.UpdatedAt = time.Now()
	return cloneCategory(c), nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false, nil
	}

	// 仍有商品或子分类引用时拒绝删除
	for _, p := range s.products {
		if p.CategoryID == id {
			return false, storage.ForeignKey("product_categories", "products.category_id")
		}
	}
	for _, c := range s.categories {
		if c.ParentID != nil && *c.ParentID == id {
			return false, storage.ForeignKey("product_categories", "parent_id")
		}
	}

	delete(s.categories, id)
	return true, nil
}

// ==================== 商品 ====================

func (s *Store) CreateProduct(ctx context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.SKU == p.SKU {
			return storage.Duplicate("products", "sku")
		}
		if existing.Slug == p.Slug {
			return storage.Duplicate("products", "slug")
		}
	}
	if _, ok := s.categories[p.CategoryID]; !ok {
		return storage.ForeignKey("products", "category_id")
	}

	id := s.nextProductID
	s.nextProductID++
	stamp(&p.BaseModel, id, time.Now())

	s.products[id] = cloneProduct(p)
	return nil
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (s *Store) GetProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.SKU == sku {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (s *Store) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (s *Store) ListProducts(ctx context.Context, filter storage.ProductFilter) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// 全表线性扫描：内存后端不以规模为目标
	list := make([]model.Product, 0)
	for _, p := range s.products {
		if filter.CategoryID > 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		list = append(list, *cloneProduct(p))
	}
	sortByID(list, func(p *model.Product) int64 { return p.ID })
	return list, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, update *model.ProductUpdate) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}

	update.Apply(p)
	p.UpdatedAt = time.Now()
	return cloneProduct(p), nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}

	// 被订单明细或定制方案引用的商品拒绝删除（与关系型后端的 FK 行为一致）
	for _, item := range s.orderItems {
		if item.ProductID != nil && *item.ProductID == id {
			return false, storage.ForeignKey("products", "order_items.product_id")
		}
	}
	for _, d := range s.designs {
		if d.ProductID == id {
			return false, storage.ForeignKey("products", "custom_designs.product_id")
		}
	}

	delete(s.products, id)
	return true, nil
}

// ==================== 面料 ====================

func (s *Store) CreateFabric(ctx context.Context, f *model.Fabric) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.MinQuantity <= 0 {
		f.MinQuantity = 1
	}

	id := s.nextFabricID
	s.nextFabricID++
	stamp(&f.BaseModel, id, time.Now())

	s.fabrics[id] = cloneFabric(f)
	return nil
}

func (s *Store) GetFabric(ctx context.Context, id int64) (*model.Fabric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fabrics[id]
	if !ok {
		return nil, nil
	}
	return cloneFabric(f), nil
}

func (s *Store) ListFabrics(ctx context.Context, availableOnly bool) ([]model.Fabric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Fabric, 0)
	for _, f := range s.fabrics {
		if availableOnly && !f.Available {
			continue
		}
		list = append(list, *cloneFabric(f))
	}
	sortByID(list, func(f *model.Fabric) int64 { return f.ID })
	return list, nil
}

func (s *Store) UpdateFabric(ctx context.Context, id int64, update *model.FabricUpdate) (*model.Fabric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fabrics[id]
	if !ok {
		return nil, nil
	}

	update.Apply(f)
	f.UpdatedAt = time.Now()
	return cloneFabric(f), nil
}
