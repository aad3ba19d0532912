package dto

import "encoding/json"

// ==================== 分类 ====================

// CategoryReq 新建分类请求
type CategoryReq struct {
	Name        string `json:"name" binding:"required,max=128"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"omitempty,max=512"`
	Slug        string `json:"slug" binding:"required,max=128"`
	ParentID    *int64 `json:"parent_id" binding:"omitempty,gt=0"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// CategoryUpdateReq 分类更新请求
type CategoryUpdateReq struct {
	Name        *string `json:"name" binding:"omitempty,max=128"`
	Description *string `json:"description"`
	Image       *string `json:"image" binding:"omitempty,max=512"`
	ParentID    *int64  `json:"parent_id" binding:"omitempty,gt=0"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// ==================== 商品 ====================

// ProductReq 新建商品请求
type ProductReq struct {
	CategoryID  int64  `json:"category_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`

	BasePrice int64  `json:"base_price" binding:"required,gt=0"`
	SalePrice *int64 `json:"sale_price" binding:"omitempty,gt=0"`
	Stock     int    `json:"stock" binding:"omitempty,gte=0"`

	SKU  string `json:"sku" binding:"required,max=64"`
	Slug string `json:"slug" binding:"required,max=128"`

	Image                string          `json:"image" binding:"omitempty,max=512"`
	Features             []string        `json:"features"`
	Tags                 []string        `json:"tags"`
	CustomizationOptions json.RawMessage `json:"customization_options"`

	Featured bool  `json:"featured"`
	IsActive *bool `json:"is_active"`
}

// ProductUpdateReq 商品更新请求
type ProductUpdateReq struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`

	BasePrice *int64 `json:"base_price" binding:"omitempty,gt=0"`
	SalePrice *int64 `json:"sale_price" binding:"omitempty,gt=0"`
	Stock     *int   `json:"stock" binding:"omitempty,gte=0"`

	Image                *string         `json:"image" binding:"omitempty,max=512"`
	Features             []string        `json:"features"`
	Tags                 []string        `json:"tags"`
	CustomizationOptions json.RawMessage `json:"customization_options"`

	Featured *bool `json:"featured"`
	IsActive *bool `json:"is_active"`
}

// ==================== 面料 ====================

// FabricReq 新建面料请求
type FabricReq struct {
	Name    string `json:"name" binding:"required,max=128"`
	Type    string `json:"type" binding:"required,max=64"`
	Color   string `json:"color" binding:"required,max=64"`
	Pattern string `json:"pattern" binding:"omitempty,max=64"`

	Price       int64  `json:"price" binding:"omitempty,gte=0"`
	Composition string `json:"composition" binding:"omitempty,max=255"`
	Origin      string `json:"origin" binding:"omitempty,max=128"`
	Image       string `json:"image" binding:"omitempty,max=512"`

	Available   *bool `json:"available"`
	LeadTime    int   `json:"lead_time" binding:"omitempty,gte=0"`
	MinQuantity int   `json:"min_quantity" binding:"omitempty,gte=1"`
}

// FabricUpdateReq 面料更新请求
type FabricUpdateReq struct {
	Name    *string `json:"name" binding:"omitempty,max=128"`
	Type    *string `json:"type" binding:"omitempty,max=64"`
	Color   *string `json:"color" binding:"omitempty,max=64"`
	Pattern *string `json:"pattern" binding:"omitempty,max=64"`

	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	Composition *string `json:"composition" binding:"omitempty,max=255"`
	Origin      *string `json:"origin" binding:"omitempty,max=128"`
	Image       *string `json:"image" binding:"omitempty,max=512"`

	Available   *bool `json:"available"`
	LeadTime    *int  `json:"lead_time" binding:"omitempty,gte=0"`
	MinQuantity *int  `json:"min_quantity" binding:"omitempty,gte=1"`
}
