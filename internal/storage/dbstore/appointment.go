package dbstore

import (
	"context"
	"time"

	"emperor_bespoke_v1/internal/model"
)

// ==================== 预约 ====================

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	if a.Status == "" {
		a.Status = model.AppointmentScheduled
	}
	if a.Location == "" {
		a.Location = "London Boutique"
	}
	if a.Duration <= 0 {
		a.Duration = 60
	}
	return wrapErr("appointments", s.db.WithContext(ctx).Create(a).Error)
}

func (s *Store) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	var a model.Appointment
	err := s.db.WithContext(ctx).First(&a, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListAppointmentsByUser(ctx context.Context, userID int64) ([]model.Appointment, error) {
	var list []model.Appointment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (s *Store) UpdateAppointment(ctx context.Context, id int64, update *model.AppointmentUpdate) (*model.Appointment, error) {
	changes := update.Changes()
	if len(changes) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.Appointment{}).
			Where("id = ?", id).
			Updates(changes).Error
		if err != nil {
			return nil, wrapErr("appointments", err)
		}
	}
	return s.GetAppointment(ctx, id)
}

func (s *Store) CancelAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil || a == nil {
		return a, err
	}

	// 重复取消是幂等空操作
	if a.Status == model.AppointmentCancelled {
		return a, nil
	}

	err = s.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ?", id).
		Update("status", model.AppointmentCancelled).Error
	if err != nil {
		return nil, err
	}
	return s.GetAppointment(ctx, id)
}

func (s *Store) CompletePastAppointments(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("status = ? AND date < ?", model.AppointmentScheduled, before).
		Update("status", model.AppointmentCompleted)
	return res.RowsAffected, res.Error
}
