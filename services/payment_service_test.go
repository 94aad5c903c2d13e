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

func newTestPaymentService(t *testing.T) (*PaymentService, *models.Reservation) {
	t.Helper()
	ctx := context.Background()
	payments := repositories.NewMemoryRepository[models.Payment]()
	reservations := repositories.NewMemoryRepository[models.Reservation]()

	reservation, err := reservations.Add(ctx, &models.Reservation{
		UserID: 7, VehicleID: 3,
		PickUpDateTime:  day(1),
		DropOffDateTime: day(3),
		Status:          models.ReservationStatusConfirmed,
		TotalPrice:      100,
	})
	if err != nil {
		t.Fatalf("Add reservation: %v", err)
	}

	service := NewPaymentService(PaymentServiceOptions{
		Payments:     payments,
		Reservations: reservations,
		Logger:       logger.NewDefaultLogger(logger.ErrorLevel),
	})
	return service, reservation
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()
	service, reservation := newTestPaymentService(t)

	created, err := service.Create(ctx, &models.Payment{
		Method:        "card",
		Amount:        100,
		ReservationID: reservation.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Chủ đơn và xe lấy từ reservation, không tin dữ liệu gửi lên.
	if created.UserID != reservation.UserID || created.VehicleID != reservation.VehicleID {
		t.Errorf("payment phải kế thừa user/vehicle từ reservation: %+v", created)
	}
	if created.TransactionDate.IsZero() {
		t.Error("ngày giao dịch phải được gán mặc định")
	}
}

func TestCreatePaymentRejectsNegativeAmount(t *testing.T) {
	ctx := context.Background()
	service, reservation := newTestPaymentService(t)

	if _, err := service.Create(ctx, &models.Payment{Method: "card", Amount: -1, ReservationID: reservation.ID}); err == nil {
		t.Fatal("số tiền âm phải bị từ chối")
	}
}

func TestCreatePaymentRequiresReservation(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestPaymentService(t)

	if _, err := service.Create(ctx, &models.Payment{Method: "card", Amount: 100, ReservationID: 999}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("reservation không tồn tại: muốn ErrNotFound, nhận %v", err)
	}
}

func TestCreatePaymentOnePerReservation(t *testing.T) {
	ctx := context.Background()
	service, reservation := newTestPaymentService(t)

	if _, err := service.Create(ctx, &models.Payment{Method: "card", Amount: 100, ReservationID: reservation.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := service.Create(ctx, &models.Payment{Method: "cash", Amount: 100, ReservationID: reservation.ID}); !errors.Is(err, apperrors.ErrAlreadyExists) {
		t.Fatalf("thanh toán lần hai cho cùng reservation: muốn ErrAlreadyExists, nhận %v", err)
	}
}

func TestGetPaymentByReservation(t *testing.T) {
	ctx := context.Background()
	service, reservation := newTestPaymentService(t)

	if _, err := service.GetByReservation(ctx, reservation.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("chưa có thanh toán: muốn ErrNotFound, nhận %v", err)
	}

	created, err := service.Create(ctx, &models.Payment{Method: "card", Amount: 100, ReservationID: reservation.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := service.GetByReservation(ctx, reservation.ID)
	if err != nil {
		t.Fatalf("GetByReservation: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("muốn payment %d, nhận %d", created.ID, got.ID)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()
	service, reservation := newTestPaymentService(t)

	created, err := service.Create(ctx, &models.Payment{Method: "card", Amount: 100, ReservationID: reservation.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, bad := range []int{-1, 4} {
		if _, err := service.UpdateStatus(ctx, created.ID, bad); err == nil {
			t.Fatalf("trạng thái %d phải bị từ chối", bad)
		}
	}

	updated, err := service.UpdateStatus(ctx, created.ID, constants.PaymentStatusSuccess)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != constants.PaymentStatusSuccess {
		t.Fatalf("trạng thái phải là %d, nhận %d", constants.PaymentStatusSuccess, updated.Status)
	}
}
