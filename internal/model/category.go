package model

// ProductCategory 商品分类（树形，parent 不可指向自身或后代）
type ProductCategory struct {
	BaseModel
	Name        string `gorm:"size:128;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:512" json:"image"`
	Slug        string `gorm:"size:128;uniqueIndex;not null" json:"slug"`

	ParentID *int64           `gorm:"index" json:"parent_id,omitempty"`
	Parent   *ProductCategory `gorm:"foreignKey:ParentID" json:"-"`

	SortOrder int `gorm:"default:0" json:"sort_order"`
	// 不带数据库默认值，false 不能被 INSERT 省略后改写成 true
	IsActive bool `json:"is_active"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

// CategoryUpdate 分类部分更新
type CategoryUpdate struct {
	Name        *string
	Description *string
	Image       *string
	ParentID    *int64
	SortOrder   *int
	IsActive    *bool
}

func (c *CategoryUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if c.Name != nil {
		changes["name"] = *c.Name
	}
	if c.Description != nil {
		changes["description"] = *c.Description
	}
	if c.Image != nil {
		changes["image"] = *c.Image
	}
	if c.ParentID != nil {
		changes["parent_id"] = *c.ParentID
	}
	if c.SortOrder != nil {
		changes["sort_order"] = *c.SortOrder
	}
	if c.IsActive != nil {
		changes["is_active"] = *c.IsActive
	}
	return changes
}

func (c *CategoryUpdate) Apply(rec *ProductCategory) {
	if c.Name != nil {
		rec.Name = *c.Name
	}
	if c.Description != nil {
		rec.Description = *c.Description
	}
	if c.Image != nil {
		rec.Image = *c.Image
	}
	if c.ParentID != nil {
		parentID := *c.ParentID
		rec.ParentID = &parentID
	}
	if c.SortOrder != nil {
		rec.SortOrder = *c.SortOrder
	}
	if c.IsActive != nil {
		rec.IsActive = *c.IsActive
	}
}
