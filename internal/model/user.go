package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 会员等级 ====================

// MembershipTier 会员等级
type MembershipTier string

const (
	TierStandard MembershipTier = "standard" // 普通会员
	TierGold     MembershipTier = "gold"     // 金卡会员
	TierPlatinum MembershipTier = "platinum" // 白金会员
)

// Valid 校验会员等级取值
func (t MembershipTier) Valid() bool {
	switch t {
	case TierStandard, TierGold, TierPlatinum:
		return true
	}
	return false
}

// ==================== 用户 ====================

// User 平台用户（顾客）
type User struct {
	BaseModel
	Username  string  `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password  string  `gorm:"size:128;not null" json:"-"` // bcrypt 哈希，永不下发
	Email     string  `gorm:"size:128;uniqueIndex;not null" json:"email"`
	FirstName string  `gorm:"size:64;not null" json:"first_name"`
	LastName  string  `gorm:"size:64;not null" json:"last_name"`
	Phone     *string `gorm:"size:32" json:"phone,omitempty"`

	MembershipTier MembershipTier `gorm:"size:20;default:standard" json:"membership_tier"`
	// Preferences 偏好设置，结构由前端自定义，核心层不校验
	Preferences datatypes.JSON `gorm:"type:jsonb" json:"preferences,omitempty"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserUpdate 用户部分更新字段（nil 表示不修改）
type UserUpdate struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	MembershipTier *MembershipTier
	Preferences    datatypes.JSON
}

// Changes 转为列更新集合（供关系型后端使用）
func (u *UserUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.FirstName != nil {
		changes["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		changes["last_name"] = *u.LastName
	}
	if u.Phone != nil {
		changes["phone"] = *u.Phone
	}
	if u.MembershipTier != nil {
		changes["membership_tier"] = *u.MembershipTier
	}
	if u.Preferences != nil {
		changes["preferences"] = u.Preferences
	}
	return changes
}

// Apply 将更新合并到记录（供内存后端使用）。
// 指针与切片字段一律复制值，记录不与更新结构共享内存
func (u *UserUpdate) Apply(user *User) {
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.Phone != nil {
		phone := *u.Phone
		user.Phone = &phone
	}
	if u.MembershipTier != nil {
		user.MembershipTier = *u.MembershipTier
	}
	if u.Preferences != nil {
		user.Preferences = append(datatypes.JSON(nil), u.Preferences...)
	}
}
