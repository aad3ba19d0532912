package model

// Testimonial 顾客评价
// Rating 取值 1-5，在 DTO 层校验
type Testimonial struct {
	BaseModel
	Name        string `gorm:"size:128;not null" json:"name"`
	Location    string `gorm:"size:128" json:"location"`
	Testimonial string `gorm:"type:text;not null" json:"testimonial"`
	Image       string `gorm:"size:512" json:"image"`

	Rating   int  `json:"rating"`
	Featured bool `gorm:"default:false" json:"featured"`

	ProductID    *int64      `gorm:"index" json:"product_id,omitempty"`
	Product      *Product    `gorm:"foreignKey:ProductID" json:"-"`
	CollectionID *int64      `gorm:"index" json:"collection_id,omitempty"`
	Collection   *Collection `gorm:"foreignKey:CollectionID" json:"-"`

	DisplayOrder int `gorm:"default:0" json:"display_order"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
