package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	apperrors "roadready/errors"
	"roadready/models"
	"roadready/repositories"
	"roadready/services/logger"
)

func newTestDiscountService(
	vehicles repositories.Repository[*models.Vehicle],
	reservations repositories.Repository[*models.Reservation],
) *DiscountService {
	return NewDiscountService(DiscountServiceOptions{
		Discounts:            repositories.NewMemoryRepository[models.Discount](),
		Vehicles:             vehicles,
		Reservations:         reservations,
		VehicleDiscounts:     repositories.NewMemoryRepository[models.VehicleDiscount](),
		ReservationDiscounts: repositories.NewMemoryRepository[models.ReservationDiscount](),
		Logger:               logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func newTestReservationService(t *testing.T) (*ReservationService, *DiscountService, repositories.Repository[*models.Vehicle]) {
	t.Helper()
	vehicles := repositories.NewMemoryRepository[models.Vehicle]()
	reservations := repositories.NewMemoryRepository[models.Reservation]()
	discounts := newTestDiscountService(vehicles, reservations)
	service := NewReservationService(ReservationServiceOptions{
		Reservations: reservations,
		Vehicles:     vehicles,
		Pricer:       discounts,
		Policy:       AvailabilityPolicy{},
		Logger:       logger.NewDefaultLogger(logger.ErrorLevel),
	})
	return service, discounts, vehicles
}

func addTestVehicle(t *testing.T, vehicles repositories.Repository[*models.Vehicle], rate float64) *models.Vehicle {
	t.Helper()
	available := true
	v, err := vehicles.Add(context.Background(), &models.Vehicle{
		Make:         "Toyota",
		Model:        "Vios",
		DailyRate:    rate,
		Availability: &available,
	})
	if err != nil {
		t.Fatalf("không thêm được xe: %v", err)
	}
	return v
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	created, err := service.Create(ctx, CreateReservationInput{
		UserID:          1,
		VehicleID:       vehicle.ID,
		PickUpDateTime:  day(1),
		DropOffDateTime: day(4),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.ReservationStatusPending {
		t.Errorf("đơn mới phải ở trạng thái Pending, nhận %s", created.Status)
	}
	if created.TotalPrice != 150 {
		t.Errorf("giá 3 ngày x 50 phải là 150, nhận %.2f", created.TotalPrice)
	}
}

func TestCreateReservationConflict(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	if _, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(10), DropOffDateTime: day(15),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Đơn thứ hai giao khoảng ngày phải bị từ chối.
	if _, err := service.Create(ctx, CreateReservationInput{
		UserID: 2, VehicleID: vehicle.ID,
		PickUpDateTime: day(12), DropOffDateTime: day(18),
	}); !errors.Is(err, apperrors.ErrReservationConflict) {
		t.Fatalf("muốn ErrReservationConflict, nhận %v", err)
	}

	// Xe khác không bị ảnh hưởng.
	other := addTestVehicle(t, vehicles, 60)
	if _, err := service.Create(ctx, CreateReservationInput{
		UserID: 2, VehicleID: other.ID,
		PickUpDateTime: day(12), DropOffDateTime: day(18),
	}); err != nil {
		t.Fatalf("đặt xe khác cùng khoảng ngày phải thành công: %v", err)
	}
}

func TestCreateReservationInvalidInterval(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	if _, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(5), DropOffDateTime: day(2),
	}); !errors.Is(err, apperrors.ErrInvalidInterval) {
		t.Fatalf("muốn ErrInvalidInterval, nhận %v", err)
	}
}

func TestCreateReservationVehicleUnavailable(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)

	off := false
	vehicle, err := vehicles.Add(ctx, &models.Vehicle{Make: "Kia", Model: "Morning", DailyRate: 30, Availability: &off})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(1), DropOffDateTime: day(2),
	}); !errors.Is(err, apperrors.ErrVehicleNotAvailable) {
		t.Fatalf("muốn ErrVehicleNotAvailable, nhận %v", err)
	}
}

// Hai request đặt cùng xe cùng khoảng ngày chạy song song: đúng một
// request thắng, các request còn lại nhận lỗi trùng lịch.
func TestCreateReservationConcurrent(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := service.Create(ctx, CreateReservationInput{
				UserID: userID, VehicleID: vehicle.ID,
				PickUpDateTime: day(10), DropOffDateTime: day(15),
			})
			results <- err
		}(uint(i + 1))
	}
	wg.Wait()
	close(results)

	succeeded := 0
	conflicted := 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, apperrors.ErrReservationConflict):
			conflicted++
		default:
			t.Fatalf("lỗi không mong đợi: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("đúng một request được thắng, nhận %d", succeeded)
	}
	if conflicted != workers-1 {
		t.Fatalf("các request còn lại phải nhận lỗi trùng lịch, nhận %d", conflicted)
	}
}

func TestCancelFreesInterval(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	first, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(10), DropOffDateTime: day(15),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := service.Cancel(ctx, first.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// Khoảng ngày đã được trả lại, đặt lại phải thành công.
	if _, err := service.Create(ctx, CreateReservationInput{
		UserID: 2, VehicleID: vehicle.ID,
		PickUpDateTime: day(10), DropOffDateTime: day(15),
	}); err != nil {
		t.Fatalf("đặt lại sau khi hủy phải thành công: %v", err)
	}
}

func TestCancelIdempotent(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	reservation, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(1), DropOffDateTime: day(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := service.Cancel(ctx, reservation.ID); err != nil {
		t.Fatalf("Cancel lần 1: %v", err)
	}
	cancelled, err := service.Cancel(ctx, reservation.ID)
	if err != nil {
		t.Fatalf("Cancel lần 2 phải là no-op: %v", err)
	}
	if cancelled.Status != models.ReservationStatusCancelled {
		t.Errorf("trạng thái sau hủy phải là Cancelled, nhận %s", cancelled.Status)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	reservation, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(1), DropOffDateTime: day(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := service.UpdateStatus(ctx, reservation.ID, models.ReservationStatusConfirmed); err != nil {
		t.Fatalf("Pending -> Confirmed: %v", err)
	}
	if _, err := service.UpdateStatus(ctx, reservation.ID, models.ReservationStatusPending); err == nil {
		t.Fatal("Confirmed -> Pending phải bị từ chối")
	}
	if _, err := service.UpdateStatus(ctx, reservation.ID, models.ReservationStatusCancelled); err != nil {
		t.Fatalf("Confirmed -> Cancelled: %v", err)
	}
	if _, err := service.UpdateStatus(ctx, reservation.ID, models.ReservationStatusConfirmed); err == nil {
		t.Fatal("Cancelled -> Confirmed phải bị từ chối")
	}
}

func TestUpdatePriceRejectsNegative(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	reservation, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(1), DropOffDateTime: day(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := service.UpdatePrice(ctx, reservation.ID, -10); err == nil {
		t.Fatal("giá âm phải bị từ chối")
	}
	got, err := service.GetByID(ctx, reservation.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalPrice != reservation.TotalPrice {
		t.Errorf("giá không được thay đổi sau khi từ chối, nhận %.2f", got.TotalPrice)
	}

	if _, err := service.UpdatePrice(ctx, reservation.ID, 123.45); err != nil {
		t.Fatalf("UpdatePrice hợp lệ: %v", err)
	}
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	if _, err := service.ListPending(ctx); !errors.Is(err, apperrors.ErrNoPendingReservations) {
		t.Fatalf("chưa có đơn: muốn ErrNoPendingReservations, nhận %v", err)
	}

	reservation, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(1), DropOffDateTime: day(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	pending, err := service.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != reservation.ID {
		t.Fatalf("ListPending trả sai: %+v", pending)
	}

	if _, err := service.UpdateStatus(ctx, reservation.ID, models.ReservationStatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, err := service.ListPending(ctx); !errors.Is(err, apperrors.ErrNoPendingReservations) {
		t.Fatalf("sau khi duyệt hết: muốn ErrNoPendingReservations, nhận %v", err)
	}
}

func TestUpdateStatusMissingReservation(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	existing, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(1), DropOffDateTime: day(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := service.UpdateStatus(ctx, 99, models.ReservationStatusConfirmed); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("đơn không tồn tại: muốn ErrNotFound, nhận %v", err)
	}

	// Kho không được thay đổi sau lần cập nhật hụt.
	all, err := service.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 || all[0].ID != existing.ID || all[0].Status != models.ReservationStatusPending {
		t.Fatalf("kho bị thay đổi: %+v", all)
	}
}

func TestGetByIDIdempotentRead(t *testing.T) {
	ctx := context.Background()
	service, _, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	created, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(1), DropOffDateTime: day(3),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID lần 1: %v", err)
	}
	second, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID lần 2: %v", err)
	}
	if *first != *second {
		t.Fatalf("hai lần đọc liên tiếp trả khác nhau:\n%+v\n%+v", *first, *second)
	}
}

func TestDeriveDisplayStatus(t *testing.T) {
	// Mọi đơn chưa hủy đều hiện Reserved, bất kể đang ở bước nào.
	for _, status := range []models.ReservationStatus{
		models.ReservationStatusPending,
		models.ReservationStatusReserved,
		models.ReservationStatusConfirmed,
	} {
		r := &models.Reservation{
			PickUpDateTime:  day(10),
			DropOffDateTime: day(15),
			Status:          status,
		}
		if got := DeriveDisplayStatus(r); got != "Reserved" {
			t.Errorf("trạng thái %s: muốn Reserved, nhận %s", status, got)
		}
	}
	cancelled := &models.Reservation{
		PickUpDateTime:  day(10),
		DropOffDateTime: day(15),
		Status:          models.ReservationStatusCancelled,
	}
	if got := DeriveDisplayStatus(cancelled); got != "Cancelled" {
		t.Errorf("đơn đã hủy: muốn Cancelled, nhận %s", got)
	}
}

func TestReservationPriceWithDiscount(t *testing.T) {
	ctx := context.Background()
	service, discounts, vehicles := newTestReservationService(t)
	vehicle := addTestVehicle(t, vehicles, 100)

	d, err := discounts.Create(ctx, &models.Discount{
		Name:       "Fall Sale",
		CouponCode: "FALL20",
		Percentage: 20,
		StartDate:  day(1).Add(-24 * time.Hour),
		EndDate:    day(30),
	})
	if err != nil {
		t.Fatalf("tạo mã giảm giá: %v", err)
	}
	if err := discounts.AssignToVehicle(ctx, d.ID, vehicle.ID); err != nil {
		t.Fatalf("gắn mã giảm giá: %v", err)
	}

	created, err := service.Create(ctx, CreateReservationInput{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime: day(1), DropOffDateTime: day(4),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// 3 ngày x 100, giảm 20%.
	if created.TotalPrice != 240 {
		t.Errorf("giá sau giảm phải là 240, nhận %.2f", created.TotalPrice)
	}
}
