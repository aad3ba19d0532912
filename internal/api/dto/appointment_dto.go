package dto

import "time"

// AppointmentReq 新建预约请求
type AppointmentReq struct {
	Date     time.Time `json:"date" binding:"required"`
	TimeSlot string    `json:"time_slot" binding:"omitempty,max=32"`

	Type string `json:"type" binding:"required,oneof=consultation fitting final_fitting virtual"`

	Location string `json:"location" binding:"omitempty,max=128"`
	Notes    string `json:"notes"`

	DesignID *int64 `json:"design_id" binding:"omitempty,gt=0"`

	Duration  int  `json:"duration" binding:"omitempty,gte=15,lte=240"`
	IsVirtual bool `json:"is_virtual"`
}

// AppointmentUpdateReq 预约改期/补充请求
type AppointmentUpdateReq struct {
	Date     *time.Time `json:"date"`
	TimeSlot *string    `json:"time_slot" binding:"omitempty,max=32"`

	Type *string `json:"type" binding:"omitempty,oneof=consultation fitting final_fitting virtual"`

	Location *string `json:"location" binding:"omitempty,max=128"`
	Notes    *string `json:"notes"`

	DesignID *int64 `json:"design_id" binding:"omitempty,gt=0"`

	Duration  *int  `json:"duration" binding:"omitempty,gte=15,lte=240"`
	IsVirtual *bool `json:"is_virtual"`
}
