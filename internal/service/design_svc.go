package service

import (
	"context"
	"fmt"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// DesignService 定制方案
type DesignService struct {
	store storage.Store
}

// NewDesignService 工厂方法
func NewDesignService(store storage.Store) *DesignService {
	return &DesignService{store: store}
}

// CreateDesign 新建定制方案
// 价格由服务端计算：商品生效价 + 面料加价；量体记录必须属于当前用户
func (s *DesignService) CreateDesign(ctx context.Context, userID int64, req *dto.DesignReq) (*model.CustomDesign, error) {
	// 1. 查商品定价
	product, err := s.store.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: 商品不存在", ErrInvalid)
	}
	price := product.EffectivePrice()

	// 2. 面料加价
	if req.FabricID != nil {
		fabric, err := s.store.GetFabric(ctx, *req.FabricID)
		if err != nil {
			return nil, err
		}
		if fabric == nil {
			return nil, fmt.Errorf("%w: 面料不存在", ErrInvalid)
		}
		if !fabric.Available {
			return nil, fmt.Errorf("%w: 该面料暂不可选", ErrInvalid)
		}
		price += fabric.Price
	}

	// 3. 量体记录归属校验
	if req.MeasurementID != nil {
		m, err := s.store.GetMeasurement(ctx, *req.MeasurementID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: 量体记录不存在", ErrInvalid)
		}
		if m.UserID != userID {
			return nil, ErrForbidden
		}
	}

	// 4. 入库
	d := &model.CustomDesign{
		UserID:        userID,
		ProductID:     req.ProductID,
		FabricID:      req.FabricID,
		MeasurementID: req.MeasurementID,
		Name:          req.Name,
		Details:       []byte(req.Details),
		Price:         price,
		IsPublic:      req.IsPublic,
		IsFavorite:    req.IsFavorite,
	}
	if err := s.store.CreateDesign(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// GetDesign 查询定制方案
// 公开方案任何人可看，私有方案仅限本人
func (s *DesignService) GetDesign(ctx context.Context, userID, id int64) (*model.CustomDesign, error) {
	d, err := s.store.GetDesign(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	if !d.IsPublic && d.UserID != userID {
		return nil, ErrForbidden
	}
	return d, nil
}

// ListMyDesigns 当前用户的全部方案
func (s *DesignService) ListMyDesigns(ctx context.Context, userID int64) ([]model.CustomDesign, error) {
	return s.store.ListDesignsByUser(ctx, userID)
}

// ListPublicDesigns 公开方案橱窗
func (s *DesignService) ListPublicDesigns(ctx context.Context) ([]model.CustomDesign, error) {
	return s.store.ListPublicDesigns(ctx)
}

// UpdateDesign 更新定制方案（仅限本人；改动面料后重算价格）
func (s *DesignService) UpdateDesign(ctx context.Context, userID, id int64, req *dto.DesignUpdateReq) (*model.CustomDesign, error) {
	// 1. 归属校验
	existing, err := s.store.GetDesign(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	update := &model.DesignUpdate{
		Name:          req.Name,
		MeasurementID: req.MeasurementID,
		IsPublic:      req.IsPublic,
		IsFavorite:    req.IsFavorite,
	}
	if req.Details != nil {
		update.Details = []byte(req.Details)
	}

	// 2. 换量体记录时校验归属
	if req.MeasurementID != nil {
		m, err := s.store.GetMeasurement(ctx, *req.MeasurementID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: 量体记录不存在", ErrInvalid)
		}
		if m.UserID != userID {
			return nil, ErrForbidden
		}
	}

	// 3. 换面料时重算价格
	if req.FabricID != nil {
		fabric, err := s.store.GetFabric(ctx, *req.FabricID)
		if err != nil {
			return nil, err
		}
		if fabric == nil {
			return nil, fmt.Errorf("%w: 面料不存在", ErrInvalid)
		}
		if !fabric.Available {
			return nil, fmt.Errorf("%w: 该面料暂不可选", ErrInvalid)
		}
		product, err := s.store.GetProduct(ctx, existing.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrNotFound
		}
		price := product.EffectivePrice() + fabric.Price
		update.FabricID = req.FabricID
		update.Price = &price
	}

	d, err := s.store.UpdateDesign(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

// DeleteDesign 删除定制方案（仅限本人；被预约或订单引用时由存储层拒绝）
func (s *DesignService) DeleteDesign(ctx context.Context, userID, id int64) error {
	existing, err := s.store.GetDesign(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	deleted, err := s.store.DeleteDesign(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
