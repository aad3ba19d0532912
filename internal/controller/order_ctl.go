package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/middleware"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/service"
)

// OrderController 订单
type OrderController struct {
	orderSvc *service.OrderService
}

func NewOrderController(orderSvc *service.OrderService) *OrderController {
	return &OrderController{orderSvc: orderSvc}
}

// Create 下单
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	o, err := c.orderSvc.Create(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, o)
}

// Get 查询订单（含明细行）
func (c *OrderController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	o, err := c.orderSvc.Get(ctx.Request.Context(), middleware.CurrentUserID(ctx), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, o)
}

// GetByNumber 按订单号查询
func (c *OrderController) GetByNumber(ctx *gin.Context) {
	o, err := c.orderSvc.GetByNumber(ctx.Request.Context(), middleware.CurrentUserID(ctx), ctx.Param("number"))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, o)
}

// List 当前用户的全部订单
func (c *OrderController) List(ctx *gin.Context) {
	list, err := c.orderSvc.List(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// UpdateStatus 变更制作状态
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.OrderStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	o, err := c.orderSvc.UpdateStatus(ctx.Request.Context(), middleware.CurrentUserID(ctx), id, model.OrderStatus(req.Status))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, o)
}

// UpdatePaymentStatus 变更支付状态
func (c *OrderController) UpdatePaymentStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.PaymentStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	o, err := c.orderSvc.UpdatePaymentStatus(ctx.Request.Context(), middleware.CurrentUserID(ctx), id, model.PaymentStatus(req.PaymentStatus))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, o)
}
