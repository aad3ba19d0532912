package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// 定价常量（分）
const (
	// FreeShippingThreshold 满额免运费
	FreeShippingThreshold int64 = 50000
	// FlatShippingFee 标准运费
	FlatShippingFee int64 = 1500
	// VATRatePercent 增值税率
	VATRatePercent int64 = 20
	// 会员折扣（百分比）
	GoldDiscountPercent     int64 = 5
	PlatinumDiscountPercent int64 = 10
)

// OrderService 订单
type OrderService struct {
	store storage.Store
}

// NewOrderService 工厂方法
func NewOrderService(store storage.Store) *OrderService {
	return &OrderService{store: store}
}

// Create 下单
// 全部金额由服务端按当前价格计算；订单与明细行由存储层原子写入
func (s *OrderService) Create(ctx context.Context, userID int64, req *dto.OrderReq) (*model.Order, error) {
	// 1. 查会员等级（决定折扣）
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	// 2. 逐行定价
	items := make([]model.OrderItem, 0, len(req.Items))
	var subtotal int64
	for i, line := range req.Items {
		item, err := s.priceItem(ctx, userID, &line)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", i+1, err)
		}
		subtotal += item.Subtotal
		items = append(items, *item)
	}

	// 3. 订单级金额
	discount := tierDiscount(user.MembershipTier, subtotal)
	tax := (subtotal - discount) * VATRatePercent / 100
	shipping := FlatShippingFee
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}

	order := &model.Order{
		UserID:        userID,
		OrderNumber:   newOrderNumber(),
		Subtotal:      subtotal,
		Tax:           tax,
		Shipping:      shipping,
		Discount:      discount,
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentUnpaid,
		Notes:         req.Notes,
		Items:         items,
	}
	order.Total = order.ComputeTotal()
	if req.ShippingAddress != nil {
		order.ShippingAddress = []byte(req.ShippingAddress)
	}
	if req.BillingAddress != nil {
		order.BillingAddress = []byte(req.BillingAddress)
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// priceItem 明细行定价
// 成衣行: 单价 = 商品生效价；定制行: 单价 = 方案商品生效价，面料加价单记
func (s *OrderService) priceItem(ctx context.Context, userID int64, line *dto.OrderItemReq) (*model.OrderItem, error) {
	if line.ProductID == nil && line.DesignID == nil {
		return nil, fmt.Errorf("%w: product_id 与 design_id 至少填一个", ErrInvalid)
	}

	item := &model.OrderItem{
		ProductID: line.ProductID,
		DesignID:  line.DesignID,
		Quantity:  line.Quantity,
	}

	switch {
	case line.DesignID != nil:
		design, err := s.store.GetDesign(ctx, *line.DesignID)
		if err != nil {
			return nil, err
		}
		if design == nil {
			return nil, fmt.Errorf("%w: 定制方案不存在", ErrInvalid)
		}
		if design.UserID != userID {
			return nil, ErrForbidden
		}
		product, err := s.store.GetProduct(ctx, design.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: 方案关联的商品已下架", ErrInvalid)
		}
		item.UnitPrice = product.EffectivePrice()
		if design.FabricID != nil {
			fabric, err := s.store.GetFabric(ctx, *design.FabricID)
			if err != nil {
				return nil, err
			}
			if fabric == nil {
				return nil, fmt.Errorf("%w: 方案关联的面料不存在", ErrInvalid)
			}
			if line.Quantity < fabric.MinQuantity {
				return nil, fmt.Errorf("%w: 该面料最小起订量为 %d", ErrInvalid, fabric.MinQuantity)
			}
			item.FabricCost = fabric.Price * int64(line.Quantity)
		}

	default:
		product, err := s.store.GetProduct(ctx, *line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: 商品不存在", ErrInvalid)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: 商品已下架", ErrInvalid)
		}
		item.UnitPrice = product.EffectivePrice()
	}

	item.Subtotal = item.ComputeSubtotal()
	return item, nil
}

// tierDiscount 按会员等级计算折扣
func tierDiscount(tier model.MembershipTier, subtotal int64) int64 {
	switch tier {
	case model.TierGold:
		return subtotal * GoldDiscountPercent / 100
	case model.TierPlatinum:
		return subtotal * PlatinumDiscountPercent / 100
	}
	return 0
}

// newOrderNumber 订单号: ORD-日期-随机段
func newOrderNumber() string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), frag)
}

// Get 查询订单（仅限本人，含明细行）
func (s *OrderService) Get(ctx context.Context, userID, id int64) (*model.Order, error) {
	o, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

// GetByNumber 按订单号查询（仅限本人）
func (s *OrderService) GetByNumber(ctx context.Context, userID int64, orderNumber string) (*model.Order, error) {
	o, err := s.store.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

// List 当前用户的全部订单
func (s *OrderService) List(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.store.ListOrdersByUser(ctx, userID)
}

// UpdateStatus 变更制作状态
// 已完成/已取消为终态；首次迁移到 completed 由存储层写入 CompletedAt
func (s *OrderService) UpdateStatus(ctx context.Context, userID, id int64, status model.OrderStatus) (*model.Order, error) {
	existing, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}
	if existing.Status == model.OrderCompleted || existing.Status == model.OrderCancelled {
		return nil, fmt.Errorf("%w: 订单已进入终态 %s", ErrInvalid, existing.Status)
	}

	o, err := s.store.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

// UpdatePaymentStatus 变更支付状态（与制作状态相互独立）
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, userID, id int64, status model.PaymentStatus) (*model.Order, error) {
	existing, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	o, err := s.store.UpdatePaymentStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}
