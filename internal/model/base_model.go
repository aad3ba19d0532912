package model

import (
	"time"
)

// BaseModel 所有实体的公共字段
// ID 与时间戳由存储层分配，客户端不可指定
type BaseModel struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
