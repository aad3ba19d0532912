package dto

import "encoding/json"

// DesignReq 新建定制方案请求（userID 取自令牌，不在请求体内）
type DesignReq struct {
	ProductID     int64  `json:"product_id" binding:"required,gt=0"`
	FabricID      *int64 `json:"fabric_id" binding:"omitempty,gt=0"`
	MeasurementID *int64 `json:"measurement_id" binding:"omitempty,gt=0"`

	Name    string          `json:"name" binding:"required,max=128"`
	Details json.RawMessage `json:"details" binding:"required"`

	IsPublic   bool `json:"is_public"`
	IsFavorite bool `json:"is_favorite"`
}

// DesignUpdateReq 定制方案更新请求
// 改动面料后价格由服务端重算，客户端不可指定价格
type DesignUpdateReq struct {
	Name          *string         `json:"name" binding:"omitempty,max=128"`
	Details       json.RawMessage `json:"details"`
	FabricID      *int64          `json:"fabric_id" binding:"omitempty,gt=0"`
	MeasurementID *int64          `json:"measurement_id" binding:"omitempty,gt=0"`
	IsPublic      *bool           `json:"is_public"`
	IsFavorite    *bool           `json:"is_favorite"`
}
