package model

import (
	"gorm.io/datatypes"
)

// CustomDesign 顾客保存的定制方案
// productId 必填；fabricId / measurementId 可空
type CustomDesign struct {
	BaseModel
	UserID int64 `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	ProductID int64    `gorm:"index;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`

	FabricID *int64  `gorm:"index" json:"fabric_id,omitempty"`
	Fabric   *Fabric `gorm:"foreignKey:FabricID" json:"-"`

	MeasurementID *int64       `gorm:"index" json:"measurement_id,omitempty"`
	Measurement   *Measurement `gorm:"foreignKey:MeasurementID" json:"-"`

	Name string `gorm:"size:128;not null" json:"name"`
	// Details 定制明细（驳头、开衩、纽扣、刺绣等），结构不固定
	Details datatypes.JSON `gorm:"type:jsonb;not null" json:"details"`

	// Price 服务端计算：商品生效价 + 面料加价
	Price int64 `gorm:"default:0" json:"price"`

	IsPublic   bool `gorm:"default:false" json:"is_public"`
	IsFavorite bool `gorm:"default:false" json:"is_favorite"`
}

func (CustomDesign) TableName() string {
	return "custom_designs"
}

// DesignUpdate 定制方案部分更新
type DesignUpdate struct {
	Name          *string
	Details       datatypes.JSON
	FabricID      *int64
	MeasurementID *int64
	Price         *int64
	IsPublic      *bool
	IsFavorite    *bool
}

func (d *DesignUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if d.Name != nil {
		changes["name"] = *d.Name
	}
	if d.Details != nil {
		changes["details"] = d.Details
	}
	if d.FabricID != nil {
		changes["fabric_id"] = *d.FabricID
	}
	if d.MeasurementID != nil {
		changes["measurement_id"] = *d.MeasurementID
	}
	if d.Price != nil {
		changes["price"] = *d.Price
	}
	if d.IsPublic != nil {
		changes["is_public"] = *d.IsPublic
	}
	if d.IsFavorite != nil {
		changes["is_favorite"] = *d.IsFavorite
	}
	return changes
}

func (d *DesignUpdate) Apply(rec *CustomDesign) {
	if d.Name != nil {
		rec.Name = *d.Name
	}
	if d.Details != nil {
		rec.Details = append(datatypes.JSON(nil), d.Details...)
	}
	if d.FabricID != nil {
		fabricID := *d.FabricID
		rec.FabricID = &fabricID
	}
	if d.MeasurementID != nil {
		measurementID := *d.MeasurementID
		rec.MeasurementID = &measurementID
	}
	if d.Price != nil {
		rec.Price = *d.Price
	}
	if d.IsPublic != nil {
		rec.IsPublic = *d.IsPublic
	}
	if d.IsFavorite != nil {
		rec.IsFavorite = *d.IsFavorite
	}
}
