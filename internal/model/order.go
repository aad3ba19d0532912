package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 订单状态 ====================

// OrderStatus 制作状态
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"     // 待处理
	OrderInProgress OrderStatus = "in_progress" // 制作中
	OrderCompleted  OrderStatus = "completed"   // 已完成
	OrderCancelled  OrderStatus = "cancelled"   // 已取消
)

// Valid 校验订单状态取值
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// PaymentStatus 支付状态，与制作状态相互独立
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"   // 未支付
	PaymentPaid     PaymentStatus = "paid"     // 已支付
	PaymentRefunded PaymentStatus = "refunded" // 已退款
)

// Valid 校验支付状态取值
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// ==================== 订单 ====================

// Order 订单
// 金额不变式: total == subtotal + tax + shipping - discount
// 所有金额由服务端计算，不信任客户端
type Order struct {
	BaseModel
	UserID int64 `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	OrderNumber string `gorm:"size:32;uniqueIndex;not null" json:"order_number"`

	// --- 金额（分） ---
	Subtotal int64 `gorm:"not null" json:"subtotal"`
	Tax      int64 `gorm:"default:0" json:"tax"`
	Shipping int64 `gorm:"default:0" json:"shipping"`
	Discount int64 `gorm:"default:0" json:"discount"`
	Total    int64 `gorm:"not null" json:"total"`

	Status        OrderStatus   `gorm:"size:20;default:pending" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;default:unpaid" json:"payment_status"`

	ShippingAddress datatypes.JSON `gorm:"type:jsonb" json:"shipping_address,omitempty"`
	BillingAddress  datatypes.JSON `gorm:"type:jsonb" json:"billing_address,omitempty"`
	Notes           string         `gorm:"type:text" json:"notes"`

	// CompletedAt 仅在迁移到 completed 时由存储层写入
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// ComputeTotal 按不变式重算总额
func (o *Order) ComputeTotal() int64 {
	return o.Subtotal + o.Tax + o.Shipping - o.Discount
}

// ==================== 订单明细 ====================

// OrderItem 订单明细行
// 不变式: subtotal == unitPrice*quantity + fabricCost + tailoringCost + extrasCost
type OrderItem struct {
	BaseModel
	OrderID int64  `gorm:"index;not null" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`

	ProductID *int64   `gorm:"index" json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`

	DesignID *int64        `gorm:"index" json:"design_id,omitempty"`
	Design   *CustomDesign `gorm:"foreignKey:DesignID" json:"-"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	// --- 金额（分） ---
	UnitPrice     int64 `gorm:"not null" json:"unit_price"`
	FabricCost    int64 `gorm:"default:0" json:"fabric_cost"`
	TailoringCost int64 `gorm:"default:0" json:"tailoring_cost"`
	ExtrasCost    int64 `gorm:"default:0" json:"extras_cost"`
	Subtotal      int64 `gorm:"not null" json:"subtotal"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ComputeSubtotal 按不变式重算明细小计
func (i *OrderItem) ComputeSubtotal() int64 {
	return i.UnitPrice*int64(i.Quantity) + i.FabricCost + i.TailoringCost + i.ExtrasCost
}
