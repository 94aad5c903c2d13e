package repositories

import (
	"context"
	"errors"

	apperrors "roadready/errors"

	"gorm.io/gorm"
)

// GormRepository cài đặt Repository trên GORM. Mỗi entity khai báo một
// instance riêng, ví dụ:
//
//	NewGormRepository[models.Vehicle](db, "")
//	NewGormRepository[models.User](db, "username")
//
// nameColumn là cột dùng cho GetByName; để trống nếu entity không tra
// cứu theo tên được.
type GormRepository[T any, PT interface {
	Entity
	*T
}] struct {
	db         *gorm.DB
	nameColumn string
}

func NewGormRepository[T any, PT interface {
	Entity
	*T
}](db *gorm.DB, nameColumn string) *GormRepository[T, PT] {
	return &GormRepository[T, PT]{db: db, nameColumn: nameColumn}
}

func (r *GormRepository[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, "get by id %d: %v", id, err)
	}
	return PT(&item), nil
}

func (r *GormRepository[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	var items []T
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, "get all: %v", err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyList
	}
	out := make([]PT, 0, len(items))
	for i := range items {
		out = append(out, PT(&items[i]))
	}
	return out, nil
}

func (r *GormRepository[T, PT]) GetByName(ctx context.Context, name string) (PT, error) {
	if r.nameColumn == "" {
		return nil, apperrors.ErrNotFound
	}
	var item T
	if err := r.db.WithContext(ctx).Where(r.nameColumn+" = ?", name).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, "get by name %q: %v", name, err)
	}
	return PT(&item), nil
}

func (r *GormRepository[T, PT]) Add(ctx context.Context, item PT) (PT, error) {
	if item.GetID() != 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", item.GetID()).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorage, "check existing id %d: %v", item.GetID(), err)
		}
		if count > 0 {
			return nil, apperrors.ErrAlreadyExists
		}
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, "create: %v", err)
	}
	return item, nil
}

func (r *GormRepository[T, PT]) Update(ctx context.Context, item PT) (PT, error) {
	var existing T
	if err := r.db.WithContext(ctx).First(&existing, item.GetID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, "check existing id %d: %v", item.GetID(), err)
	}
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, "update id %d: %v", item.GetID(), err)
	}
	return item, nil
}

func (r *GormRepository[T, PT]) Delete(ctx context.Context, id uint) (PT, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(new(T), id).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, "delete id %d: %v", id, err)
	}
	return item, nil
}
