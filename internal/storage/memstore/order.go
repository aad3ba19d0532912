package memstore

import (
	"context"
	"time"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// ==================== 订单 ====================

func (s *Store) CreateOrder(ctx context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.orders {
		if existing.OrderNumber == o.OrderNumber {
			return storage.Duplicate("orders", "order_number")
		}
	}
	if _, ok := s.users[o.UserID]; !ok {
		return storage.ForeignKey("orders", "user_id")
	}
	for i := range o.Items {
		item := &o.Items[i]
		if item.ProductID != nil {
			if _, ok := s.products[*item.ProductID]; !ok {
				return storage.ForeignKey("order_items", "product_id")
			}
		}
		if item.DesignID != nil {
			if _, ok := s.designs[*item.DesignID]; !ok {
				return storage.ForeignKey("order_items", "design_id")
			}
		}
	}

	now := time.Now()
	id := s.nextOrderID
	s.nextOrderID++
	stamp(&o.BaseModel, id, now)

	if o.Status == "" {
		o.Status = model.OrderPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = model.PaymentUnpaid
	}

	// 订单与明细在同一临界区内落盘，对外表现为原子创建
	s.orders[id] = cloneOrder(o)
	for i := range o.Items {
		item := &o.Items[i]
		itemID := s.nextOrderItemID
		s.nextOrderItemID++
		stamp(&item.BaseModel, itemID, now)
		item.OrderID = id
		s.orderItems[itemID] = cloneOrderItem(item)
	}
	return nil
}

// itemsOfLocked 装配订单明细，调用方必须已持有读锁
func (s *Store) itemsOfLocked(orderID int64) []model.OrderItem {
	items := make([]model.OrderItem, 0)
	for _, item := range s.orderItems {
		if item.OrderID == orderID {
			items = append(items, *cloneOrderItem(item))
		}
	}
	sortByID(items, func(i *model.OrderItem) int64 { return i.ID })
	return items
}

func (s *Store) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	result := cloneOrder(o)
	result.Items = s.itemsOfLocked(id)
	return result, nil
}

func (s *Store) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			result := cloneOrder(o)
			result.Items = s.itemsOfLocked(o.ID)
			return result, nil
		}
	}
	return nil, nil
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			result := cloneOrder(o)
			result.Items = s.itemsOfLocked(o.ID)
			list = append(list, *result)
		}
	}
	sortByID(list, func(o *model.Order) int64 { return o.ID })
	return list, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}

	now := time.Now()
	o.Status = status
	// CompletedAt 仅在首次迁移到 completed 时写入
	if status == model.OrderCompleted && o.CompletedAt == nil {
		o.CompletedAt = &now
	}
	o.UpdatedAt = now

	result := cloneOrder(o)
	result.Items = s.itemsOfLocked(id)
	return result, nil
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}

	o.PaymentStatus = status
	o.UpdatedAt = time.Now()

	result := cloneOrder(o)
	result.Items = s.itemsOfLocked(id)
	return result, nil
}
