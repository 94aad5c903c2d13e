package repositories

import (
	"context"
	"sort"
	"sync"

	apperrors "roadready/errors"
)

// MemoryRepository là bản cài đặt Repository trong bộ nhớ, dùng cho
// unit test và chạy thử không cần Postgres. Bản ghi được lưu theo giá
// trị; Get trả về con trỏ tới bản sao nên thay đổi trên kết quả chỉ
// có hiệu lực sau khi gọi Update.
type MemoryRepository[T any, PT interface {
	Entity
	*T
}] struct {
	mu     sync.RWMutex
	items  map[uint]T
	nextID uint
}

func NewMemoryRepository[T any, PT interface {
	Entity
	*T
}]() *MemoryRepository[T, PT] {
	return &MemoryRepository[T, PT]{items: make(map[uint]T)}
}

func (r *MemoryRepository[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := item
	return PT(&c), nil
}

func (r *MemoryRepository[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return nil, apperrors.ErrEmptyList
	}
	out := make([]PT, 0, len(r.items))
	for id := range r.items {
		c := r.items[id]
		out = append(out, PT(&c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GetID() < out[j].GetID() })
	return out, nil
}

func (r *MemoryRepository[T, PT]) GetByName(ctx context.Context, name string) (PT, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := range r.items {
		c := r.items[id]
		named, ok := any(PT(&c)).(Named)
		if !ok {
			break
		}
		if named.GetName() == name {
			return PT(&c), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryRepository[T, PT]) Add(ctx context.Context, item PT) (PT, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.GetID() != 0 {
		if _, ok := r.items[item.GetID()]; ok {
			return nil, apperrors.ErrAlreadyExists
		}
		if item.GetID() > r.nextID {
			r.nextID = item.GetID()
		}
	} else {
		r.nextID++
		item.SetID(r.nextID)
	}
	r.items[item.GetID()] = *(*T)(item)
	c := r.items[item.GetID()]
	return PT(&c), nil
}

func (r *MemoryRepository[T, PT]) Update(ctx context.Context, item PT) (PT, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.GetID()]; !ok {
		return nil, apperrors.ErrNotFound
	}
	r.items[item.GetID()] = *(*T)(item)
	c := r.items[item.GetID()]
	return PT(&c), nil
}

func (r *MemoryRepository[T, PT]) Delete(ctx context.Context, id uint) (PT, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.items, id)
	c := item
	return PT(&c), nil
}
