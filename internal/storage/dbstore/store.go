// Package dbstore 提供存储契约的关系型数据库实现（GORM）。
// 唯一性与外键完整性由数据库约束保证，经 gorm 的错误翻译
// （TranslateError）统一映射到 storage 包的错误分类，
// 对外行为与内存后端完全一致。
package dbstore

import (
	"errors"

	"gorm.io/gorm"

	"emperor_bespoke_v1/internal/storage"
)

// Store 关系型后端
type Store struct {
	db *gorm.DB
}

// New 基于已建立的连接创建后端（连接与迁移见 pkg/database）
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// wrapErr 将数据库约束错误映射到存储层错误分类
// （分类依据与 Postgres 错误码 23505/23503 对应）
func wrapErr(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &storage.ConstraintError{Entity: entity, Detail: err.Error(), Kind: storage.ErrDuplicateKey}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &storage.ConstraintError{Entity: entity, Detail: err.Error(), Kind: storage.ErrForeignKey}
	}
	return err
}

// notFound 未找到是正常结果而非错误
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
