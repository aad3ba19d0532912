package memstore

import (
	"context"
	"time"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// ==================== 定制方案 ====================

func (s *Store) CreateDesign(ctx context.Context, d *model.CustomDesign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[d.UserID]; !ok {
		return storage.ForeignKey("custom_designs", "user_id")
	}
	if _, ok := s.products[d.ProductID]; !ok {
		return storage.ForeignKey("custom_designs", "product_id")
	}
	if d.FabricID != nil {
		if _, ok := s.fabrics[*d.FabricID]; !ok {
			return storage.ForeignKey("custom_designs", "fabric_id")
		}
	}
	if d.MeasurementID != nil {
		if _, ok := s.measurements[*d.MeasurementID]; !ok {
			return storage.ForeignKey("custom_designs", "measurement_id")
		}
	}

	id := s.nextDesignID
	s.nextDesignID++
	stamp(&d.BaseModel, id, time.Now())

	s.designs[id] = cloneDesign(d)
	return nil
}

func (s *Store) GetDesign(ctx context.Context, id int64) (*model.CustomDesign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.designs[id]
	if !ok {
		return nil, nil
	}
	return cloneDesign(d), nil
}

func (s *Store) ListDesignsByUser(ctx context.Context, userID int64) ([]model.CustomDesign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.CustomDesign, 0)
	for _, d := range s.designs {
		if d.UserID == userID {
			list = append(list, *cloneDesign(d))
		}
	}
	sortByID(list, func(d *model.CustomDesign) int64 { return d.ID })
	return list, nil
}

func (s *Store) ListPublicDesigns(ctx context.Context) ([]model.CustomDesign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.CustomDesign, 0)
	for _, d := range s.designs {
		if d.IsPublic {
			list = append(list, *cloneDesign(d))
		}
	}
	sortByID(list, func(d *model.CustomDesign) int64 { return d.ID })
	return list, nil
}

func (s *Store) UpdateDesign(ctx context.Context, id int64, update *model.DesignUpdate) (*model.CustomDesign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.designs[id]
	if !ok {
		return nil, nil
	}
	if update.FabricID != nil {
		if _, ok := s.fabrics[*update.FabricID]; !ok {
			return nil, storage.ForeignKey("custom_designs", "fabric_id")
		}
	}
	if update.MeasurementID != nil {
		if _, ok := s.measurements[*update.MeasurementID]; !ok {
			return nil, storage.ForeignKey("custom_designs", "measurement_id")
		}
	}

	update.Apply(d)
	d.UpdatedAt = time.Now()
	return cloneDesign(d), nil
}

func (s *Store) DeleteDesign(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.designs[id]; !ok {
		return false, nil
	}

	// 被预约或订单明细引用的方案拒绝删除
	for _, a := range s.appointments {
		if a.DesignID != nil && *a.DesignID == id {
			return false, storage.ForeignKey("custom_designs", "appointments.design_id")
		}
	}
	for _, item := range s.orderItems {
		if item.DesignID != nil && *item.DesignID == id {
			return false, storage.ForeignKey("custom_designs", "order_items.design_id")
		}
	}

	delete(s.designs, id)
	return true, nil
}
