package dbstore

import (
	"context"
	"time"

	"emperor_bespoke_v1/internal/model"
)

// ==================== 用户 ====================

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if user.MembershipTier == "" {
		user.MembershipTier = model.TierStandard
	}
	return wrapErr("users", s.db.WithContext(ctx).Create(user).Error)
}

func (s *Store) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, update *model.UserUpdate) (*model.User, error) {
	changes := update.Changes()
	if len(changes) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.User{}).
			Where("id = ?", id).
			Updates(changes).Error
		if err != nil {
			return nil, wrapErr("users", err)
		}
	}
	return s.GetUser(ctx, id)
}

func (s *Store) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

// ==================== 量体数据 ====================

func (s *Store) CreateMeasurement(ctx context.Context, m *model.Measurement) error {
	return wrapErr("measurements", s.db.WithContext(ctx).Create(m).Error)
}

func (s *Store) GetMeasurement(ctx context.Context, id int64) (*model.Measurement, error) {
	var m model.Measurement
	err := s.db.WithContext(ctx).First(&m, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListMeasurementsByUser(ctx context.Context, userID int64) ([]model.Measurement, error) {
	var list []model.Measurement
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (s *Store) UpdateMeasurement(ctx context.Context, id int64, update *model.MeasurementUpdate) (*model.Measurement, error) {
	changes := update.Changes()
	if len(changes) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.Measurement{}).
			Where("id = ?", id).
			Updates(changes).Error
		if err != nil {
			return nil, wrapErr("measurements", err)
		}
	}
	return s.GetMeasurement(ctx, id)
}

func (s *Store) DeleteMeasurement(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&model.Measurement{}, id)
	if res.Error != nil {
		return false, wrapErr("measurements", res.Error)
	}
	return res.RowsAffected > 0, nil
}
