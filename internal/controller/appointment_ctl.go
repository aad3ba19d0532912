package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/middleware"
	"emperor_bespoke_v1/internal/service"
)

// AppointmentController 预约
type AppointmentController struct {
	appointmentSvc *service.AppointmentService
}

func NewAppointmentController(appointmentSvc *service.AppointmentService) *AppointmentController {
	return &AppointmentController{appointmentSvc: appointmentSvc}
}

// Book 新建预约
func (c *AppointmentController) Book(ctx *gin.Context) {
	var req dto.AppointmentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	a, err := c.appointmentSvc.Book(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, a)
}

// Get 查询预约
func (c *AppointmentController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	a, err := c.appointmentSvc.Get(ctx.Request.Context(), middleware.CurrentUserID(ctx), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, a)
}

// List 当前用户的全部预约
func (c *AppointmentController) List(ctx *gin.Context) {
	list, err := c.appointmentSvc.List(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// Update 改期 / 补充备注
func (c *AppointmentController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AppointmentUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	a, err := c.appointmentSvc.Update(ctx.Request.Context(), middleware.CurrentUserID(ctx), id, &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, a)
}

// Cancel 取消预约（幂等）
func (c *AppointmentController) Cancel(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	a, err := c.appointmentSvc.Cancel(ctx.Request.Context(), middleware.CurrentUserID(ctx), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, a)
}
