package dto

import "time"

// CollectionReq 新建系列请求
type CollectionReq struct {
	Name        string `json:"name" binding:"required,max=128"`
	Description string `json:"description" binding:"required"`
	Tagline     string `json:"tagline" binding:"omitempty,max=255"`
	Slug        string `json:"slug" binding:"required,max=128"`
	Image       string `json:"image" binding:"required,max=512"`

	Featured bool   `json:"featured"`
	Season   string `json:"season" binding:"omitempty,max=32"`
	Year     int    `json:"year" binding:"omitempty,gte=2000"`
	IsActive *bool  `json:"is_active"`

	LaunchDate *time.Time `json:"launch_date"`
}

// TestimonialReq 新建评价请求
type TestimonialReq struct {
	Name        string `json:"name" binding:"required,max=128"`
	Location    string `json:"location" binding:"omitempty,max=128"`
	Testimonial string `json:"testimonial" binding:"required"`
	Image       string `json:"image" binding:"omitempty,max=512"`

	Rating   int  `json:"rating" binding:"required,min=1,max=5"`
	Featured bool `json:"featured"`

	ProductID    *int64 `json:"product_id" binding:"omitempty,gt=0"`
	CollectionID *int64 `json:"collection_id" binding:"omitempty,gt=0"`

	DisplayOrder int `json:"display_order" binding:"omitempty,gte=0"`
}
