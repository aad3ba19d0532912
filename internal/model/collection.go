package model

import (
	"time"
)

// Collection 系列橱窗（如 "The Executive"、"The Sovereign"）
type Collection struct {
	BaseModel
	Name        string `gorm:"size:128;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Tagline     string `gorm:"size:255" json:"tagline"`
	Slug        string `gorm:"size:128;uniqueIndex;not null" json:"slug"`
	Image       string `gorm:"size:512;not null" json:"image"`

	Featured bool   `gorm:"default:false" json:"featured"`
	Season   string `gorm:"size:32" json:"season"`
	Year     int    `gorm:"default:0" json:"year"`
	// 不带数据库默认值，false 不能被 INSERT 省略后改写成 true
	IsActive bool `json:"is_active"`

	LaunchDate *time.Time `json:"launch_date,omitempty"`
}

func (Collection) TableName() string {
	return "collections"
}
