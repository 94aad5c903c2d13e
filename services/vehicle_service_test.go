package services

import (
	"context"
	"errors"
	"testing"

	apperrors "roadready/errors"
	"roadready/models"
	"roadready/repositories"
	"roadready/services/logger"
)

func newTestVehicleService(t *testing.T) (*VehicleService, repositories.Repository[*models.Vehicle], repositories.Repository[*models.Reservation]) {
	t.Helper()
	vehicles := repositories.NewMemoryRepository[models.Vehicle]()
	reservations := repositories.NewMemoryRepository[models.Reservation]()
	service := NewVehicleService(VehicleServiceOptions{
		Vehicles:     vehicles,
		Reservations: reservations,
		Policy:       AvailabilityPolicy{},
		Logger:       logger.NewDefaultLogger(logger.ErrorLevel),
	})
	return service, vehicles, reservations
}

func TestCreateVehicleRejectsNegativeRate(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestVehicleService(t)

	if _, err := service.Create(ctx, &models.Vehicle{Make: "Kia", Model: "Morning", DailyRate: -1}); err == nil {
		t.Fatal("giá thuê âm phải bị từ chối")
	}
	if _, err := service.Create(ctx, &models.Vehicle{Make: "Kia", Model: "Morning", DailyRate: 45}); err != nil {
		t.Fatalf("Create hợp lệ: %v", err)
	}
}

func TestListAvailable(t *testing.T) {
	ctx := context.Background()
	service, vehicles, _ := newTestVehicleService(t)

	yes, no := true, false
	if _, err := vehicles.Add(ctx, &models.Vehicle{Make: "Toyota", Model: "Vios", Availability: &yes, DailyRate: 50}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := vehicles.Add(ctx, &models.Vehicle{Make: "Honda", Model: "City", Availability: &no, DailyRate: 55}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Chưa đặt cờ: không hiện trên danh mục.
	if _, err := vehicles.Add(ctx, &models.Vehicle{Make: "Mazda", Model: "2", DailyRate: 48}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	listed, err := service.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(listed) != 1 || listed[0].Model != "Vios" {
		t.Fatalf("chỉ xe bật cờ mới được liệt kê, nhận %+v", listed)
	}
}

func TestListAvailableForInterval(t *testing.T) {
	ctx := context.Background()
	service, vehicles, reservations := newTestVehicleService(t)

	busy := addTestVehicle(t, vehicles, 50)
	free := addTestVehicle(t, vehicles, 60)

	if _, err := reservations.Add(ctx, &models.Reservation{
		UserID: 1, VehicleID: busy.ID,
		PickUpDateTime:  day(5),
		DropOffDateTime: day(10),
		Status:          models.ReservationStatusReserved,
	}); err != nil {
		t.Fatalf("Add reservation: %v", err)
	}

	listed, err := service.ListAvailableForInterval(ctx, day(7), day(9))
	if err != nil {
		t.Fatalf("ListAvailableForInterval: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != free.ID {
		t.Fatalf("xe đang bị giữ không được liệt kê, nhận %+v", listed)
	}

	// Ngoài khoảng bận thì cả hai xe đều trống.
	listed, err = service.ListAvailableForInterval(ctx, day(11), day(12))
	if err != nil {
		t.Fatalf("ListAvailableForInterval: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("muốn 2 xe trống, nhận %d", len(listed))
	}

	if _, err := service.ListAvailableForInterval(ctx, day(9), day(7)); !errors.Is(err, apperrors.ErrInvalidInterval) {
		t.Fatalf("khoảng ngược phải trả ErrInvalidInterval, nhận %v", err)
	}
}

func TestListAvailableForIntervalIgnoresCancelled(t *testing.T) {
	ctx := context.Background()
	service, vehicles, reservations := newTestVehicleService(t)

	vehicle := addTestVehicle(t, vehicles, 50)
	if _, err := reservations.Add(ctx, &models.Reservation{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime:  day(5),
		DropOffDateTime: day(10),
		Status:          models.ReservationStatusCancelled,
	}); err != nil {
		t.Fatalf("Add reservation: %v", err)
	}

	listed, err := service.ListAvailableForInterval(ctx, day(6), day(8))
	if err != nil {
		t.Fatalf("ListAvailableForInterval: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("đơn đã hủy không được chặn xe, nhận %d xe", len(listed))
	}
}

func TestSetDailyRate(t *testing.T) {
	ctx := context.Background()
	service, vehicles, _ := newTestVehicleService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	if _, err := service.SetDailyRate(ctx, vehicle.ID, -10); err == nil {
		t.Fatal("giá thuê âm phải bị từ chối")
	}
	got, err := service.GetByID(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.DailyRate != 50 {
		t.Fatalf("giá bị ghi dở thành %.2f", got.DailyRate)
	}

	updated, err := service.SetDailyRate(ctx, vehicle.ID, 75)
	if err != nil {
		t.Fatalf("SetDailyRate: %v", err)
	}
	if updated.DailyRate != 75 {
		t.Fatalf("giá phải là 75, nhận %.2f", updated.DailyRate)
	}
}

func TestSetSpecification(t *testing.T) {
	ctx := context.Background()
	service, vehicles, _ := newTestVehicleService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	updated, err := service.SetSpecification(ctx, vehicle.ID, "Số tự động, 5 chỗ, máy xăng 1.5L")
	if err != nil {
		t.Fatalf("SetSpecification: %v", err)
	}
	if updated.Specification != "Số tự động, 5 chỗ, máy xăng 1.5L" {
		t.Fatalf("thông số không được lưu: %q", updated.Specification)
	}

	if _, err := service.SetSpecification(ctx, 999, "bất kỳ"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("xe không tồn tại: muốn ErrNotFound, nhận %v", err)
	}
}

func TestSetAvailability(t *testing.T) {
	ctx := context.Background()
	service, vehicles, _ := newTestVehicleService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	updated, err := service.SetAvailability(ctx, vehicle.ID, false)
	if err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if updated.IsListedAvailable() {
		t.Error("xe vừa tắt cờ không được hiện trên danh mục")
	}
	if !updated.BlocksBooking() {
		t.Error("xe vừa tắt cờ phải chặn đặt xe mới")
	}
}

func TestViewAvailability(t *testing.T) {
	ctx := context.Background()
	service, vehicles, reservations := newTestVehicleService(t)
	vehicle := addTestVehicle(t, vehicles, 50)

	if _, err := reservations.Add(ctx, &models.Reservation{
		UserID: 1, VehicleID: vehicle.ID,
		PickUpDateTime:  day(5),
		DropOffDateTime: day(10),
		Status:          models.ReservationStatusReserved,
	}); err != nil {
		t.Fatalf("Add reservation: %v", err)
	}
	if _, err := reservations.Add(ctx, &models.Reservation{
		UserID: 2, VehicleID: vehicle.ID,
		PickUpDateTime:  day(12),
		DropOffDateTime: day(14),
		Status:          models.ReservationStatusCancelled,
	}); err != nil {
		t.Fatalf("Add reservation: %v", err)
	}

	view, err := service.ViewAvailability(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("ViewAvailability: %v", err)
	}
	if !view.Available {
		t.Error("cờ cho thuê phải là true")
	}
	if len(view.Busy) != 1 {
		t.Fatalf("đơn đã hủy không được tính là bận, nhận %d khoảng", len(view.Busy))
	}
	if !view.Busy[0].PickUpDateTime.Equal(day(5)) || !view.Busy[0].DropOffDateTime.Equal(day(10)) {
		t.Errorf("khoảng bận sai: %+v", view.Busy[0])
	}

	if _, err := service.ViewAvailability(ctx, 999); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("xe không tồn tại: muốn ErrNotFound, nhận %v", err)
	}
}
