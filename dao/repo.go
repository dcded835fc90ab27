package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO，各实体 DAO 内嵌后按需扩展
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// IsExist 按条件判断记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var m T
	err := r.Db.WithContext(ctx).Model(&m).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindById 按主键查询，不存在时返回 nil
func (r Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs 按主键列表查询
func (r Repo[T]) FindByIDs(ctx context.Context, ids []uint64) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	var items []*T
	err := r.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// FindByWhere 按条件查询多条
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Where(where, args...).Find(&items).Error
	return items, err
}

// FindCount 按条件统计
func (r Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	var m T
	err := r.Db.WithContext(ctx).Model(&m).Where(where, args...).Count(&count).Error
	return count, err
}

// Create 插入记录
func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// UpdateById 按主键更新指定字段
func (r Repo[T]) UpdateById(ctx context.Context, id any, values map[string]any) error {
	var m T
	return r.Db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(values).Error
}

// Transaction 事务
func (r Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
