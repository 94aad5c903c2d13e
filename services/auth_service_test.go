package services

import (
	"context"
	"errors"
	"testing"

	"roadready/constants"
	apperrors "roadready/errors"
	"roadready/models"
	"roadready/repositories"
	"roadready/services/logger"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(AuthServiceOptions{
		Users:  repositories.NewMemoryRepository[models.User](),
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func registerUser(t *testing.T, service *AuthService) *models.User {
	t.Helper()
	created, err := service.Register(context.Background(), &models.User{
		Username: "nguyenvana",
		Email:    "vana@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return created
}

func TestRegister(t *testing.T) {
	service := newTestAuthService(t)
	created := registerUser(t, service)

	if created.Password == "secret123" {
		t.Error("mật khẩu phải được hash trước khi lưu")
	}
	if created.Status != constants.UserStatusActive {
		t.Errorf("tài khoản mới phải active, nhận %d", created.Status)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService(t)
	registerUser(t, service)

	// Cùng email, username khác.
	if _, err := service.Register(ctx, &models.User{Username: "khac", Email: "vana@example.com", Password: "secret123"}); err == nil {
		t.Fatal("email trùng phải bị từ chối")
	}
	// Cùng username, email khác.
	if _, err := service.Register(ctx, &models.User{Username: "nguyenvana", Email: "khac@example.com", Password: "secret123"}); err == nil {
		t.Fatal("username trùng phải bị từ chối")
	}
}

func TestRegisterRequiredFields(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService(t)

	for _, u := range []*models.User{
		{Email: "a@example.com", Password: "secret123"},
		{Username: "a", Password: "secret123"},
		{Username: "a", Email: "a@example.com"},
	} {
		if _, err := service.Register(ctx, u); err == nil {
			t.Errorf("thiếu trường bắt buộc phải bị từ chối: %+v", u)
		}
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService(t)
	created := registerUser(t, service)

	// Đăng nhập được bằng cả email lẫn username.
	for _, identifier := range []string{"vana@example.com", "nguyenvana"} {
		user, token, err := service.Login(ctx, identifier, "secret123")
		if err != nil {
			t.Fatalf("Login %q: %v", identifier, err)
		}
		if user.ID != created.ID {
			t.Errorf("Login %q trả sai user %d", identifier, user.ID)
		}
		userID, err := GetIDFromToken(token)
		if err != nil || userID != created.ID {
			t.Errorf("token không giải mã được về user %d: %v", created.ID, err)
		}
	}

	if _, _, err := service.Login(ctx, "nguyenvana", "sai-mat-khau"); err == nil {
		t.Fatal("mật khẩu sai phải bị từ chối")
	}
	if _, _, err := service.Login(ctx, "khong-ton-tai", "secret123"); err == nil {
		t.Fatal("tài khoản không tồn tại phải bị từ chối")
	}
}

func TestLoginInactiveUser(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService(t)
	created := registerUser(t, service)

	if _, err := service.SetUserStatus(ctx, created.ID, constants.UserStatusInactive); err != nil {
		t.Fatalf("SetUserStatus: %v", err)
	}
	if _, _, err := service.Login(ctx, "nguyenvana", "secret123"); err == nil {
		t.Fatal("tài khoản bị khóa không được đăng nhập")
	}
}

func TestSetUserStatusBounds(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService(t)
	created := registerUser(t, service)

	if _, err := service.SetUserStatus(ctx, created.ID, 5); err == nil {
		t.Fatal("trạng thái ngoài khoảng phải bị từ chối")
	}
	if _, err := service.SetUserStatus(ctx, 999, constants.UserStatusInactive); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("user không tồn tại: muốn ErrNotFound, nhận %v", err)
	}
}
