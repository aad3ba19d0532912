package dbstore

import (
	"context"

	"emperor_bespoke_v1/internal/model"
)

// ==================== 定制方案 ====================

func (s *Store) CreateDesign(ctx context.Context, d *model.CustomDesign) error {
	return wrapErr("custom_designs", s.db.WithContext(ctx).Create(d).Error)
}

func (s *Store) GetDesign(ctx context.Context, id int64) (*model.CustomDesign, error) {
	var d model.CustomDesign
	err := s.db.WithContext(ctx).First(&d, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) ListDesignsByUser(ctx context.Context, userID int64) ([]model.CustomDesign, error) {
	var list []model.CustomDesign
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (s *Store) ListPublicDesigns(ctx context.Context) ([]model.CustomDesign, error) {
	var list []model.CustomDesign
	err := s.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (s *Store) UpdateDesign(ctx context.Context, id int64, update *model.DesignUpdate) (*model.CustomDesign, error) {
	changes := update.Changes()
	if len(changes) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.CustomDesign{}).
			Where("id = ?", id).
			Updates(changes).Error
		if err != nil {
			return nil, wrapErr("custom_designs", err)
		}
	}
	return s.GetDesign(ctx, id)
}

func (s *Store) DeleteDesign(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&model.CustomDesign{}, id)
	if res.Error != nil {
		return false, wrapErr("custom_designs", res.Error)
	}
	return res.RowsAffected > 0, nil
}
