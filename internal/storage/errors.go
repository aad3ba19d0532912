package storage

import (
	"errors"
	"fmt"
)

// ==================== 错误分类 ====================

// 存储层错误分为四类：
//   - 未找到：   Get*/Update* 返回 (nil, nil)，不是错误
//   - 唯一冲突： ErrDuplicateKey
//   - 外键悬空： ErrForeignKey
//   - 存储不可用：ErrUnavailable（启动时连接失败）
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
	ErrUnavailable  = errors.New("storage unavailable")
)

// ConstraintError 约束冲突详情
type ConstraintError struct {
	Entity string // 实体表名
	Detail string // 冲突的字段或底层约束信息
	Kind   error  // ErrDuplicateKey 或 ErrForeignKey
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %v (%s)", e.Entity, e.Kind, e.Detail)
}

func (e *ConstraintError) Unwrap() error {
	return e.Kind
}

// Duplicate 构造唯一约束冲突
func Duplicate(entity, detail string) error {
	return &ConstraintError{Entity: entity, Detail: detail, Kind: ErrDuplicateKey}
}

// ForeignKey 构造外键约束冲突
func ForeignKey(entity, detail string) error {
	return &ConstraintError{Entity: entity, Detail: detail, Kind: ErrForeignKey}
}

// IsDuplicate 是否唯一约束冲突
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsForeignKey 是否外键约束冲突
func IsForeignKey(err error) bool {
	return errors.Is(err, ErrForeignKey)
}

// IsConstraint 是否任一约束冲突
func IsConstraint(err error) bool {
	return IsDuplicate(err) || IsForeignKey(err)
}
