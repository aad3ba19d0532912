package dbstore

import (
	"context"
	"time"

	"gorm.io/gorm"

	"emperor_bespoke_v1/internal/model"
)

// ==================== 订单 ====================

func (s *Store) CreateOrder(ctx context.Context, o *model.Order) error {
	if o.Status == "" {
		o.Status = model.OrderPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = model.PaymentUnpaid
	}

	// 订单与明细行在同一事务内写入
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	return wrapErr("orders", err)
}

func (s *Store) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		First(&o, id).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var o model.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Where("order_number = ?", orderNumber).
		First(&o).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var list []model.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil || o == nil {
		return o, err
	}

	changes := map[string]interface{}{"status": status}
	// CompletedAt 仅在首次迁移到 completed 时写入
	if status == model.OrderCompleted && o.CompletedAt == nil {
		changes["completed_at"] = time.Now()
	}

	err = s.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Updates(changes).Error
	if err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, id)
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) (*model.Order, error) {
	err := s.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
	if err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, id)
}
