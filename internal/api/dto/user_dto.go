package dto

import "encoding/json"

// ==================== 认证 ====================

// RegisterReq 用户注册请求
type RegisterReq struct {
	Username  string  `json:"username" binding:"required,min=3,max=64"`
	Password  string  `json:"password" binding:"required,min=8"`
	Email     string  `json:"email" binding:"required,email"`
	FirstName string  `json:"first_name" binding:"required,max=64"`
	LastName  string  `json:"last_name" binding:"required,max=64"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
}

// LoginReq 用户登录请求
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResp 登录成功响应（令牌 + 基本身份）
type LoginResp struct {
	Token          string `json:"token"`
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	MembershipTier string `json:"membership_tier"`
}

// ==================== 用户资料 ====================

// ProfileUpdateReq 用户资料更新请求（仅更新出现的字段）
type ProfileUpdateReq struct {
	FirstName      *string         `json:"first_name" binding:"omitempty,max=64"`
	LastName       *string         `json:"last_name" binding:"omitempty,max=64"`
	Phone          *string         `json:"phone" binding:"omitempty,max=32"`
	MembershipTier *string         `json:"membership_tier" binding:"omitempty,oneof=standard gold platinum"`
	Preferences    json.RawMessage `json:"preferences" binding:"omitempty"`
}

// ==================== 量体数据 ====================

// MeasurementReq 新建量体记录请求
type MeasurementReq struct {
	Name      string  `json:"name" binding:"required,max=64"`
	Chest     float64 `json:"chest" binding:"omitempty,gte=0"`
	Waist     float64 `json:"waist" binding:"omitempty,gte=0"`
	Hips      float64 `json:"hips" binding:"omitempty,gte=0"`
	Inseam    float64 `json:"inseam" binding:"omitempty,gte=0"`
	Shoulders float64 `json:"shoulders" binding:"omitempty,gte=0"`
	Sleeve    float64 `json:"sleeve" binding:"omitempty,gte=0"`
	Neck      float64 `json:"neck" binding:"omitempty,gte=0"`
	Bicep     float64 `json:"bicep" binding:"omitempty,gte=0"`
	Wrist     float64 `json:"wrist" binding:"omitempty,gte=0"`
	Thigh     float64 `json:"thigh" binding:"omitempty,gte=0"`
	Height    float64 `json:"height" binding:"omitempty,gte=0"`
	Weight    float64 `json:"weight" binding:"omitempty,gte=0"`
	Notes     string  `json:"notes"`
	IsDefault bool    `json:"is_default"`
}

// MeasurementUpdateReq 量体记录更新请求
type MeasurementUpdateReq struct {
	Name      *string  `json:"name" binding:"omitempty,max=64"`
	Chest     *float64 `json:"chest" binding:"omitempty,gte=0"`
	Waist     *float64 `json:"waist" binding:"omitempty,gte=0"`
	Hips      *float64 `json:"hips" binding:"omitempty,gte=0"`
	Inseam    *float64 `json:"inseam" binding:"omitempty,gte=0"`
	Shoulders *float64 `json:"shoulders" binding:"omitempty,gte=0"`
	Sleeve    *float64 `json:"sleeve" binding:"omitempty,gte=0"`
	Neck      *float64 `json:"neck" binding:"omitempty,gte=0"`
	Bicep     *float64 `json:"bicep" binding:"omitempty,gte=0"`
	Wrist     *float64 `json:"wrist" binding:"omitempty,gte=0"`
	Thigh     *float64 `json:"thigh" binding:"omitempty,gte=0"`
	Height    *float64 `json:"height" binding:"omitempty,gte=0"`
	Weight    *float64 `json:"weight" binding:"omitempty,gte=0"`
	Notes     *string  `json:"notes"`
	IsDefault *bool    `json:"is_default"`
}
