package service

import (
	"context"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// ContentService 橱窗内容（系列 / 顾客评价）
type ContentService struct {
	store storage.Store
}

// NewContentService 工厂方法
func NewContentService(store storage.Store) *ContentService {
	return &ContentService{store: store}
}

// ==================== 系列 ====================

// CreateCollection 新建系列
func (s *ContentService) CreateCollection(ctx context.Context, req *dto.CollectionReq) (*model.Collection, error) {
	c := &model.Collection{
		Name:        req.Name,
		Description: req.Description,
		Tagline:     req.Tagline,
		Slug:        req.Slug,
		Image:       req.Image,
		Featured:    req.Featured,
		Season:      req.Season,
		Year:        req.Year,
		IsActive:    true,
		LaunchDate:  req.LaunchDate,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.store.CreateCollection(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCollection 按 ID 查系列
func (s *ContentService) GetCollection(ctx context.Context, id int64) (*model.Collection, error) {
	c, err := s.store.GetCollection(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// GetCollectionBySlug 按 slug 查系列
func (s *ContentService) GetCollectionBySlug(ctx context.Context, slug string) (*model.Collection, error) {
	c, err := s.store.GetCollectionBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// ListCollections 系列列表
func (s *ContentService) ListCollections(ctx context.Context, featuredOnly bool) ([]model.Collection, error) {
	return s.store.ListCollections(ctx, featuredOnly)
}

// ==================== 顾客评价 ====================

// CreateTestimonial 新建评价
func (s *ContentService) CreateTestimonial(ctx context.Context, req *dto.TestimonialReq) (*model.Testimonial, error) {
	t := &model.Testimonial{
		Name:         req.Name,
		Location:     req.Location,
		Testimonial:  req.Testimonial,
		Image:        req.Image,
		Rating:       req.Rating,
		Featured:     req.Featured,
		ProductID:    req.ProductID,
		CollectionID: req.CollectionID,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.store.CreateTestimonial(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTestimonial 按 ID 查评价
func (s *ContentService) GetTestimonial(ctx context.Context, id int64) (*model.Testimonial, error) {
	t, err := s.store.GetTestimonial(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// ListTestimonials 评价列表（按展示顺序）
func (s *ContentService) ListTestimonials(ctx context.Context, featuredOnly bool) ([]model.Testimonial, error) {
	return s.store.ListTestimonials(ctx, featuredOnly)
}
