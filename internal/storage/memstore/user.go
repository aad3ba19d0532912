package memstore

import (
	"context"
	"time"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// ==================== 用户 ====================

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 唯一性检查与写入在同一临界区内完成
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return storage.Duplicate("users", "username")
		}
		if existing.Email == user.Email {
			return storage.Duplicate("users", "email")
		}
	}

	if user.MembershipTier == "" {
		user.MembershipTier = model.TierStandard
	}

	id := s.nextUserID
	s.nextUserID++
	stamp(&user.BaseModel, id, time.Now())

	s.users[id] = cloneUser(user)
	return nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, update *model.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	update.Apply(user)
	user.UpdatedAt = time.Now()
	return cloneUser(user), nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil
	}
	user.LastLoginAt = &at
	user.UpdatedAt = time.Now()
	return nil
}

// ==================== 量体数据 ====================

func (s *Store) CreateMeasurement(ctx context.Context, m *model.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[m.UserID]; !ok {
		return storage.ForeignKey("measurements", "user_id")
	}

	id := s.nextMeasurementID
	s.nextMeasurementID++
	stamp(&m.BaseModel, id, time.Now())

	s.measurements[id] = cloneMeasurement(m)
	return nil
}

func (s *Store) GetMeasurement(ctx context.Context, id int64) (*model.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.measurements[id]
	if !ok {
		return nil, nil
	}
	return cloneMeasurement(m), nil
}

func (s *Store) ListMeasurementsByUser(ctx context.Context, userID int64) ([]model.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Measurement, 0)
	for _, m := range s.measurements {
		if m.UserID == userID {
			list = append(list, *cloneMeasurement(m))
		}
	}
	sortByID(list, func(m *model.Measurement) int64 { return m.ID })
	return list, nil
}

func (s *Store) UpdateMeasurement(ctx context.Context, id int64, update *model.MeasurementUpdate) (*model.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.measurements[id]
	if !ok {
		return nil, nil
	}

	update.Apply(m)
	m.UpdatedAt = time.Now()
	return cloneMeasurement(m), nil
}

func (s *Store) DeleteMeasurement(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.measurements[id]; !ok {
		return false, nil
	}

	// 被定制方案引用的量体数据不可删除
	for _, d := range s.designs {
		if d.MeasurementID != nil && *d.MeasurementID == id {
			return false, storage.ForeignKey("measurements", "custom_designs.measurement_id")
		}
	}

	delete(s.measurements, id)
	return true, nil
}
