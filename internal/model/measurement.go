package model

// Measurement 顾客量体数据
// 一个用户可保存多套（如"商务西装"、"礼服"），isDefault 标记默认套
type Measurement struct {
	BaseModel
	UserID int64 `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	Name string `gorm:"size:64;not null" json:"name"`

	// --- 身体数据（单位：厘米 / 公斤） ---
	Chest     float64 `gorm:"default:0" json:"chest"`
	Waist     float64 `gorm:"default:0" json:"waist"`
	Hips      float64 `gorm:"default:0" json:"hips"`
	Inseam    float64 `gorm:"default:0" json:"inseam"`
	Shoulders float64 `gorm:"default:0" json:"shoulders"`
	Sleeve    float64 `gorm:"default:0" json:"sleeve"`
	Neck      float64 `gorm:"default:0" json:"neck"`
	Bicep     float64 `gorm:"default:0" json:"bicep"`
	Wrist     float64 `gorm:"default:0" json:"wrist"`
	Thigh     float64 `gorm:"default:0" json:"thigh"`
	Height    float64 `gorm:"default:0" json:"height"`
	Weight    float64 `gorm:"default:0" json:"weight"`

	Notes     string `gorm:"type:text" json:"notes"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`
}

func (Measurement) TableName() string {
	return "measurements"
}

// MeasurementUpdate 量体数据部分更新
type MeasurementUpdate struct {
	Name      *string
	Chest     *float64
	Waist     *float64
	Hips      *float64
	Inseam    *float64
	Shoulders *float64
	Sleeve    *float64
	Neck      *float64
	Bicep     *float64
	Wrist     *float64
	Thigh     *float64
	Height    *float64
	Weight    *float64
	Notes     *string
	IsDefault *bool
}

func (m *MeasurementUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if m.Name != nil {
		changes["name"] = *m.Name
	}
	if m.Chest != nil {
		changes["chest"] = *m.Chest
	}
	if m.Waist != nil {
		changes["waist"] = *m.Waist
	}
	if m.Hips != nil {
		changes["hips"] = *m.Hips
	}
	if m.Inseam != nil {
		changes["inseam"] = *m.Inseam
	}
	if m.Shoulders != nil {
		changes["shoulders"] = *m.Shoulders
	}
	if m.Sleeve != nil {
		changes["sleeve"] = *m.Sleeve
	}
	if m.Neck != nil {
		changes["neck"] = *m.Neck
	}
	if m.Bicep != nil {
		changes["bicep"] = *m.Bicep
	}
	if m.Wrist != nil {
		changes["wrist"] = *m.Wrist
	}
	if m.Thigh != nil {
		changes["thigh"] = *m.Thigh
	}
	if m.Height != nil {
		changes["height"] = *m.Height
	}
	if m.Weight != nil {
		changes["weight"] = *m.Weight
	}
	if m.Notes != nil {
		changes["notes"] = *m.Notes
	}
	if m.IsDefault != nil {
		changes["is_default"] = *m.IsDefault
	}
	return changes
}

func (m *MeasurementUpdate) Apply(rec *Measurement) {
	if m.Name != nil {
		rec.Name = *m.Name
	}
	if m.Chest != nil {
		rec.Chest = *m.Chest
	}
	if m.Waist != nil {
		rec.Waist = *m.Waist
	}
	if m.Hips != nil {
		rec.Hips = *m.Hips
	}
	if m.Inseam != nil {
		rec.Inseam = *m.Inseam
	}
	if m.Shoulders != nil {
		rec.Shoulders = *m.Shoulders
	}
	if m.Sleeve != nil {
		rec.Sleeve = *m.Sleeve
	}
	if m.Neck != nil {
		rec.Neck = *m.Neck
	}
	if m.Bicep != nil {
		rec.Bicep = *m.Bicep
	}
	if m.Wrist != nil {
		rec.Wrist = *m.Wrist
	}
	if m.Thigh != nil {
		rec.Thigh = *m.Thigh
	}
	if m.Height != nil {
		rec.Height = *m.Height
	}
	if m.Weight != nil {
		rec.Weight = *m.Weight
	}
	if m.Notes != nil {
		rec.Notes = *m.Notes
	}
	if m.IsDefault != nil {
		rec.IsDefault = *m.IsDefault
	}
}
