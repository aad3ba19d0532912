package service

import (
	"context"
	"fmt"
	"time"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// AppointmentService 到店/线上预约
type AppointmentService struct {
	store storage.Store
}

// NewAppointmentService 工厂方法
func NewAppointmentService(store storage.Store) *AppointmentService {
	return &AppointmentService{store: store}
}

// Book 新建预约
// 关联定制方案时校验归属；virtual 类型强制 is_virtual
func (s *AppointmentService) Book(ctx context.Context, userID int64, req *dto.AppointmentReq) (*model.Appointment, error) {
	// 1. 不允许预约过去的时间
	if req.Date.Before(time.Now()) {
		return nil, fmt.Errorf("%w: 预约时间不能早于当前时间", ErrInvalid)
	}

	// 2. 关联方案归属校验
	if req.DesignID != nil {
		d, err := s.store.GetDesign(ctx, *req.DesignID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, fmt.Errorf("%w: 定制方案不存在", ErrInvalid)
		}
		if d.UserID != userID {
			return nil, ErrForbidden
		}
	}

	a := &model.Appointment{
		UserID:    userID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Type:      model.AppointmentType(req.Type),
		Status:    model.AppointmentScheduled,
		Location:  req.Location,
		Notes:     req.Notes,
		DesignID:  req.DesignID,
		Duration:  req.Duration,
		IsVirtual: req.IsVirtual,
	}
	if a.Type == model.AppointmentVirtual {
		a.IsVirtual = true
	}
	if err := s.store.CreateAppointment(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get 查询预约（仅限本人）
func (s *AppointmentService) Get(ctx context.Context, userID, id int64) (*model.Appointment, error) {
	a, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	if a.UserID != userID {
		return nil, ErrForbidden
	}
	return a, nil
}

// List 当前用户的全部预约
func (s *AppointmentService) List(ctx context.Context, userID int64) ([]model.Appointment, error) {
	return s.store.ListAppointmentsByUser(ctx, userID)
}

// Update 改期/补充备注（仅限本人；已完成或已取消的预约不可改）
func (s *AppointmentService) Update(ctx context.Context, userID, id int64, req *dto.AppointmentUpdateReq) (*model.Appointment, error) {
	existing, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}
	if existing.Status == model.AppointmentCompleted || existing.Status == model.AppointmentCancelled {
		return nil, fmt.Errorf("%w: 预约已结束，不可修改", ErrInvalid)
	}

	if req.Date != nil && req.Date.Before(time.Now()) {
		return nil, fmt.Errorf("%w: 预约时间不能早于当前时间", ErrInvalid)
	}
	if req.DesignID != nil {
		d, err := s.store.GetDesign(ctx, *req.DesignID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, fmt.Errorf("%w: 定制方案不存在", ErrInvalid)
		}
		if d.UserID != userID {
			return nil, ErrForbidden
		}
	}

	update := &model.AppointmentUpdate{
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Location:  req.Location,
		Notes:     req.Notes,
		DesignID:  req.DesignID,
		Duration:  req.Duration,
		IsVirtual: req.IsVirtual,
	}
	if req.Type != nil {
		t := model.AppointmentType(*req.Type)
		update.Type = &t
	}

	a, err := s.store.UpdateAppointment(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// Cancel 取消预约（仅限本人；重复取消为幂等空操作）
func (s *AppointmentService) Cancel(ctx context.Context, userID, id int64) (*model.Appointment, error) {
	existing, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	a, err := s.store.CancelAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}
