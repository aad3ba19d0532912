package model

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Product 成衣商品
// 金额字段一律为最小货币单位（分），禁止浮点
type Product struct {
	BaseModel
	CategoryID int64            `gorm:"index;not null" json:"category_id"`
	Category   *ProductCategory `gorm:"foreignKey:CategoryID" json:"-"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// --- 价格与库存 ---
	BasePrice int64  `gorm:"not null" json:"base_price"`
	SalePrice *int64 `json:"sale_price,omitempty"`
	Stock     int    `gorm:"default:0" json:"stock"`

	SKU  string `gorm:"size:64;uniqueIndex;not null" json:"sku"`
	Slug string `gorm:"size:128;uniqueIndex;not null" json:"slug"`

	Image    string         `gorm:"size:512" json:"image"`
	Features pq.StringArray `gorm:"type:text[]" json:"features"`
	Tags     pq.StringArray `gorm:"type:text[]" json:"tags"`
	// CustomizationOptions 定制选项，按商品自定义结构，核心层不校验
	CustomizationOptions datatypes.JSON `gorm:"type:jsonb" json:"customization_options,omitempty"`

	Featured bool `gorm:"default:false" json:"featured"`
	// 不带数据库默认值：gorm 会在 INSERT 时省略零值字段，false 会被
	// 数据库默认值悄悄改写成 true，上架与否由调用方显式给出
	IsActive bool `json:"is_active"`
}

func (Product) TableName() string {
	return "products"
}

// EffectivePrice 当前生效价格（有特价取特价）
func (p *Product) EffectivePrice() int64 {
	if p.SalePrice != nil && *p.SalePrice > 0 && *p.SalePrice < p.BasePrice {
		return *p.SalePrice
	}
	return p.BasePrice
}

// ProductUpdate 商品部分更新
type ProductUpdate struct {
	Name                 *string
	Description          *string
	BasePrice            *int64
	SalePrice            *int64
	Stock                *int
	Image                *string
	Features             pq.StringArray
	Tags                 pq.StringArray
	CustomizationOptions datatypes.JSON
	Featured             *bool
	IsActive             *bool
}

func (p *ProductUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.BasePrice != nil {
		changes["base_price"] = *p.BasePrice
	}
	if p.SalePrice != nil {
		changes["sale_price"] = *p.SalePrice
	}
	if p.Stock != nil {
		changes["stock"] = *p.Stock
	}
	if p.Image != nil {
		changes["image"] = *p.Image
	}
	if p.Features != nil {
		changes["features"] = p.Features
	}
	if p.Tags != nil {
		changes["tags"] = p.Tags
	}
	if p.CustomizationOptions != nil {
		changes["customization_options"] = p.CustomizationOptions
	}
	if p.Featured != nil {
		changes["featured"] = *p.Featured
	}
	if p.IsActive != nil {
		changes["is_active"] = *p.IsActive
	}
	return changes
}

func (p *ProductUpdate) Apply(rec *Product) {
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}
	if p.BasePrice != nil {
		rec.BasePrice = *p.BasePrice
	}
	if p.SalePrice != nil {
		salePrice := *p.SalePrice
		rec.SalePrice = &salePrice
	}
	if p.Stock != nil {
		rec.Stock = *p.Stock
	}
	if p.Image != nil {
		rec.Image = *p.Image
	}
	if p.Features != nil {
		rec.Features = append(pq.StringArray(nil), p.Features...)
	}
	if p.Tags != nil {
		rec.Tags = append(pq.StringArray(nil), p.Tags...)
	}
	if p.CustomizationOptions != nil {
		rec.CustomizationOptions = append(datatypes.JSON(nil), p.CustomizationOptions...)
	}
	if p.Featured != nil {
		rec.Featured = *p.Featured
	}
	if p.IsActive != nil {
		rec.IsActive = *p.IsActive
	}
}
