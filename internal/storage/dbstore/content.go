package dbstore

import (
	"context"

	"emperor_bespoke_v1/internal/model"
)

// ==================== 系列橱窗 ====================

func (s *Store) CreateCollection(ctx context.Context, c *model.Collection) error {
	return wrapErr("collections", s.db.WithContext(ctx).Create(c).Error)
}

func (s *Store) GetCollection(ctx context.Context, id int64) (*model.Collection, error) {
	var c model.Collection
	err := s.db.WithContext(ctx).First(&c, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetCollectionBySlug(ctx context.Context, slug string) (*model.Collection, error) {
	var c model.Collection
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCollections(ctx context.Context, featuredOnly bool) ([]model.Collection, error) {
	query := s.db.WithContext(ctx).Model(&model.Collection{})
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}
	var list []model.Collection
	err := query.Order("id ASC").Find(&list).Error
	return list, err
}

// ==================== 顾客评价 ====================

func (s *Store) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	return wrapErr("testimonials", s.db.WithContext(ctx).Create(t).Error)
}

func (s *Store) GetTestimonial(ctx context.Context, id int64) (*model.Testimonial, error) {
	var t model.Testimonial
	err := s.db.WithContext(ctx).First(&t, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTestimonials(ctx context.Context, featuredOnly bool) ([]model.Testimonial, error) {
	query := s.db.WithContext(ctx).Model(&model.Testimonial{})
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}
	var list []model.Testimonial
	err := query.Order("display_order ASC, id ASC").Find(&list).Error
	return list, err
}
