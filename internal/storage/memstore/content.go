package memstore

import (
	"context"
	"sort"
	"time"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// ==================== 系列橱窗 ====================

func (s *Store) CreateCollection(ctx context.Context, c *model.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.collections {
		if existing.Slug == c.Slug {
			return storage.Duplicate("collections", "slug")
		}
	}

	id := s.nextCollectionID
	s.nextCollectionID++
	stamp(&c.BaseModel, id, time.Now())

	s.collections[id] = cloneCollection(c)
	return nil
}

func (s *Store) GetCollection(ctx context.Context, id int64) (*model.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	if !ok {
		return nil, nil
	}
	return cloneCollection(c), nil
}

func (s *Store) GetCollectionBySlug(ctx context.Context, slug string) (*model.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.collections {
		if c.Slug == slug {
			return cloneCollection(c), nil
		}
	}
	return nil, nil
}

func (s *Store) ListCollections(ctx context.Context, featuredOnly bool) ([]model.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Collection, 0)
	for _, c := range s.collections {
		if featuredOnly && !c.Featured {
			continue
		}
		list = append(list, *cloneCollection(c))
	}
	sortByID(list, func(c *model.Collection) int64 { return c.ID })
	return list, nil
}

// ==================== 顾客评价 ====================

func (s *Store) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ProductID != nil {
		if _, ok := s.products[*t.ProductID]; !ok {
			return storage.ForeignKey("testimonials", "product_id")
		}
	}
	if t.CollectionID != nil {
		if _, ok := s.collections[*t.CollectionID]; !ok {
			return storage.ForeignKey("testimonials", "collection_id")
		}
	}

	id := s.nextTestimonialID
	s.nextTestimonialID++
	stamp(&t.BaseModel, id, time.Now())

	s.testimonials[id] = cloneTestimonial(t)
	return nil
}

func (s *Store) GetTestimonial(ctx context.Context, id int64) (*model.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.testimonials[id]
	if !ok {
		return nil, nil
	}
	return cloneTestimonial(t), nil
}

func (s *Store) ListTestimonials(ctx context.Context, featuredOnly bool) ([]model.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Testimonial, 0)
	for _, t := range s.testimonials {
		if featuredOnly && !t.Featured {
			continue
		}
		list = append(list, *cloneTestimonial(t))
	}
	// 与关系型后端一致：先按展示顺序，再按 ID
	sort.Slice(list, func(i, j int) bool {
		if list[i].DisplayOrder != list[j].DisplayOrder {
			return list[i].DisplayOrder < list[j].DisplayOrder
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}
