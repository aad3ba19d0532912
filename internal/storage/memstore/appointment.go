package memstore

import (
	"context"
	"time"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// ==================== 预约 ====================

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[a.UserID]; !ok {
		return storage.ForeignKey("appointments", "user_id")
	}
	if a.DesignID != nil {
		if _, ok := s.designs[*a.DesignID]; !ok {
			return storage.ForeignKey("appointments", "design_id")
		}
	}

	if a.Status == "" {
		a.Status = model.AppointmentScheduled
	}
	if a.Location == "" {
		a.Location = "London Boutique"
	}
	if a.Duration <= 0 {
		a.Duration = 60
	}

	id := s.nextAppointmentID
	s.nextAppointmentID++
	stamp(&a.BaseModel, id, time.Now())

	s.appointments[id] = cloneAppointment(a)
	return nil
}

func (s *Store) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	return cloneAppointment(a), nil
}

func (s *Store) ListAppointmentsByUser(ctx context.Context, userID int64) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Appointment, 0)
	for _, a := range s.appointments {
		if a.UserID == userID {
			list = append(list, *cloneAppointment(a))
		}
	}
	sortByID(list, func(a *model.Appointment) int64 { return a.ID })
	return list, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id int64, update *model.AppointmentUpdate) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	if update.DesignID != nil {
		if _, ok := s.designs[*update.DesignID]; !ok {
			return nil, storage.ForeignKey("appointments", "design_id")
		}
	}

	update.Apply(a)
	a.UpdatedAt = time.Now()
	return cloneAppointment(a), nil
}

func (s *Store) CancelAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}

	// 重复取消是幂等空操作，返回当前状态
	if a.Status == model.AppointmentCancelled {
		return cloneAppointment(a), nil
	}

	a.Status = model.AppointmentCancelled
	a.UpdatedAt = time.Now()
	return cloneAppointment(a), nil
}

func (s *Store) CompletePastAppointments(ctx context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var affected int64
	now := time.Now()
	for _, a := range s.appointments {
		if a.Status == model.AppointmentScheduled && a.Date.Before(before) {
			a.Status = model.AppointmentCompleted
			a.UpdatedAt = now
			affected++
		}
	}
	return affected, nil
}
