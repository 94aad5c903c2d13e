package repositories

import "context"

// Entity là ràng buộc chung cho các model có khóa chính dạng số
type Entity interface {
	GetID() uint
	SetID(id uint)
}

// Named dành cho các entity có thể tra cứu theo tên (user theo username,
// discount theo tên chương trình)
type Named interface {
	GetName() string
}

// Repository là contract CRUD chung cho từng loại entity.
// Quy ước lỗi:
//   - GetByID / GetByName / Update / Delete trả errors.ErrNotFound khi không có bản ghi
//   - GetAll trả errors.ErrEmptyList khi bảng rỗng
//   - Add trả errors.ErrAlreadyExists khi khóa chính đã tồn tại
type Repository[T Entity] interface {
	GetByID(ctx context.Context, id uint) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	GetByName(ctx context.Context, name string) (T, error)
	Add(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id uint) (T, error)
}
