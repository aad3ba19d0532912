package dto

import "encoding/json"

// OrderItemReq 订单明细行请求
// product_id / design_id 至少出现一个，由服务层校验
type OrderItemReq struct {
	ProductID *int64 `json:"product_id" binding:"omitempty,gt=0"`
	DesignID  *int64 `json:"design_id" binding:"omitempty,gt=0"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

// OrderReq 下单请求
// 所有金额由服务端按当前价格计算，请求体不含任何金额字段
type OrderReq struct {
	Items []OrderItemReq `json:"items" binding:"required,min=1,dive"`

	ShippingAddress json.RawMessage `json:"shipping_address"`
	BillingAddress  json.RawMessage `json:"billing_address"`
	Notes           string          `json:"notes"`
}

// OrderStatusReq 订单制作状态变更请求
type OrderStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}

// PaymentStatusReq 支付状态变更请求
type PaymentStatusReq struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=unpaid paid refunded"`
}
