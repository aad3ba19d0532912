package model

// Fabric 面料
// Price 为加价（分），叠加在商品价格之上
type Fabric struct {
	BaseModel
	Name    string `gorm:"size:128;not null" json:"name"`
	Type    string `gorm:"size:64;not null" json:"type"`
	Color   string `gorm:"size:64;not null" json:"color"`
	Pattern string `gorm:"size:64" json:"pattern"`

	Price       int64  `gorm:"not null" json:"price"`
	Composition string `gorm:"size:255" json:"composition"`
	Origin      string `gorm:"size:128" json:"origin"`
	Image       string `gorm:"size:512" json:"image"`

	// 不带数据库默认值，false 不能被 INSERT 省略后改写成 true
	Available   bool `json:"available"`
	LeadTime    int  `gorm:"default:0" json:"lead_time"` // 备料周期（天）
	MinQuantity int  `gorm:"default:1" json:"min_quantity"` // 最小起订量
}

func (Fabric) TableName() string {
	return "fabrics"
}

// FabricUpdate 面料部分更新
type FabricUpdate struct {
	Name        *string
	Type        *string
	Color       *string
	Pattern     *string
	Price       *int64
	Composition *string
	Origin      *string
	Image       *string
	Available   *bool
	LeadTime    *int
	MinQuantity *int
}

func (f *FabricUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if f.Name != nil {
		changes["name"] = *f.Name
	}
	if f.Type != nil {
		changes["type"] = *f.Type
	}
	if f.Color != nil {
		changes["color"] = *f.Color
	}
	if f.Pattern != nil {
		changes["pattern"] = *f.Pattern
	}
	if f.Price != nil {
		changes["price"] = *f.Price
	}
	if f.Composition != nil {
		changes["composition"] = *f.Composition
	}
	if f.Origin != nil {
		changes["origin"] = *f.Origin
	}
	if f.Image != nil {
		changes["image"] = *f.Image
	}
	if f.Available != nil {
		changes["available"] = *f.Available
	}
	if f.LeadTime != nil {
		changes["lead_time"] = *f.LeadTime
	}
	if f.MinQuantity != nil {
		changes["min_quantity"] = *f.MinQuantity
	}
	return changes
}

func (f *FabricUpdate) Apply(rec *Fabric) {
	if f.Name != nil {
		rec.Name = *f.Name
	}
	if f.Type != nil {
		rec.Type = *f.Type
	}
	if f.Color != nil {
		rec.Color = *f.Color
	}
	if f.Pattern != nil {
		rec.Pattern = *f.Pattern
	}
	if f.Price != nil {
		rec.Price = *f.Price
	}
	if f.Composition != nil {
		rec.Composition = *f.Composition
	}
	if f.Origin != nil {
		rec.Origin = *f.Origin
	}
	if f.Image != nil {
		rec.Image = *f.Image
	}
	if f.Available != nil {
		rec.Available = *f.Available
	}
	if f.LeadTime != nil {
		rec.LeadTime = *f.LeadTime
	}
	if f.MinQuantity != nil {
		rec.MinQuantity = *f.MinQuantity
	}
}
