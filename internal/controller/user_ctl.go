package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/middleware"
	"emperor_bespoke_v1/internal/service"
)

// UserController 认证 / 用户资料 / 量体数据
type UserController struct {
	userSvc *service.UserService
}

func NewUserController(userSvc *service.UserService) *UserController {
	return &UserController{userSvc: userSvc}
}

// ==================== 认证 ====================

// Register 用户注册
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	user, err := c.userSvc.Register(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// Login 用户登录
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	resp, err := c.userSvc.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ==================== 用户资料 ====================

// GetProfile 查询当前用户资料
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, err := c.userSvc.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile 更新当前用户资料
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.ProfileUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	user, err := c.userSvc.UpdateProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// ==================== 量体数据 ====================

// CreateMeasurement 新建量体记录
func (c *UserController) CreateMeasurement(ctx *gin.Context) {
	var req dto.MeasurementReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	m, err := c.userSvc.CreateMeasurement(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, m)
}

// ListMeasurements 当前用户的全部量体记录
func (c *UserController) ListMeasurements(ctx *gin.Context) {
	list, err := c.userSvc.ListMeasurements(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// UpdateMeasurement 更新量体记录
func (c *UserController) UpdateMeasurement(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.MeasurementUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindErr(ctx, err)
		return
	}

	m, err := c.userSvc.UpdateMeasurement(ctx.Request.Context(), middleware.CurrentUserID(ctx), id, &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// DeleteMeasurement 删除量体记录
func (c *UserController) DeleteMeasurement(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.userSvc.DeleteMeasurement(ctx.Request.Context(), middleware.CurrentUserID(ctx), id); err != nil {
		respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
