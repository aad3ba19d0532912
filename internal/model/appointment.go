package model

import (
	"time"
)

// ==================== 预约状态与类型 ====================

// AppointmentStatus 预约状态
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled" // 已预约
	AppointmentConfirmed AppointmentStatus = "confirmed" // 已确认
	AppointmentCompleted AppointmentStatus = "completed" // 已完成
	AppointmentCancelled AppointmentStatus = "cancelled" // 已取消
)

// AppointmentType 预约类型
type AppointmentType string

const (
	AppointmentConsultation AppointmentType = "consultation"  // 初次咨询
	AppointmentFitting      AppointmentType = "fitting"       // 试衣
	AppointmentFinalFitting AppointmentType = "final_fitting" // 终版试衣
	AppointmentVirtual      AppointmentType = "virtual"       // 线上咨询
)

// Valid 校验预约类型取值
func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentConsultation, AppointmentFitting, AppointmentFinalFitting, AppointmentVirtual:
		return true
	}
	return false
}

// ==================== 预约 ====================

// Appointment 到店/线上预约
// 状态机仅建模 scheduled -> cancelled 一条迁移，重复取消为幂等空操作
type Appointment struct {
	BaseModel
	UserID int64 `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	Date     time.Time `gorm:"not null" json:"date"`
	TimeSlot string    `gorm:"size:32" json:"time_slot"` // 如 "14:00-15:00"

	Type   AppointmentType   `gorm:"size:32;not null" json:"type"`
	Status AppointmentStatus `gorm:"size:20;default:scheduled" json:"status"`

	Location string `gorm:"size:128;default:'London Boutique'" json:"location"`
	Notes    string `gorm:"type:text" json:"notes"`

	DesignID *int64        `gorm:"index" json:"design_id,omitempty"`
	Design   *CustomDesign `gorm:"foreignKey:DesignID" json:"-"`

	Duration  int  `gorm:"default:60" json:"duration"` // 时长（分钟）
	IsVirtual bool `gorm:"default:false" json:"is_virtual"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentUpdate 预约部分更新（改期、补充备注等）
type AppointmentUpdate struct {
	Date      *time.Time
	TimeSlot  *string
	Type      *AppointmentType
	Location  *string
	Notes     *string
	DesignID  *int64
	Duration  *int
	IsVirtual *bool
}

func (a *AppointmentUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if a.Date != nil {
		changes["date"] = *a.Date
	}
	if a.TimeSlot != nil {
		changes["time_slot"] = *a.TimeSlot
	}
	if a.Type != nil {
		changes["type"] = *a.Type
	}
	if a.Location != nil {
		changes["location"] = *a.Location
	}
	if a.Notes != nil {
		changes["notes"] = *a.Notes
	}
	if a.DesignID != nil {
		changes["design_id"] = *a.DesignID
	}
	if a.Duration != nil {
		changes["duration"] = *a.Duration
	}
	if a.IsVirtual != nil {
		changes["is_virtual"] = *a.IsVirtual
	}
	return changes
}

func (a *AppointmentUpdate) Apply(rec *Appointment) {
	if a.Date != nil {
		rec.Date = *a.Date
	}
	if a.TimeSlot != nil {
		rec.TimeSlot = *a.TimeSlot
	}
	if a.Type != nil {
		rec.Type = *a.Type
	}
	if a.Location != nil {
		rec.Location = *a.Location
	}
	if a.Notes != nil {
		rec.Notes = *a.Notes
	}
	if a.DesignID != nil {
		designID := *a.DesignID
		rec.DesignID = &designID
	}
	if a.Duration != nil {
		rec.Duration = *a.Duration
	}
	if a.IsVirtual != nil {
		rec.IsVirtual = *a.IsVirtual
	}
}
