package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"roadready/errors"
	"roadready/models"
	"roadready/repositories"
	"roadready/services/logger"
)

type VehicleServiceInterface interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetByID(ctx context.Context, id uint) (*models.Vehicle, error)
	GetAll(ctx context.Context) ([]*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, id uint) error
	ListAvailable(ctx context.Context) ([]*models.Vehicle, error)
	ListAvailableForInterval(ctx context.Context, pickUp, dropOff time.Time) ([]*models.Vehicle, error)
	SetAvailability(ctx context.Context, id uint, available bool) (*models.Vehicle, error)
	SetDailyRate(ctx context.Context, id uint, rate float64) (*models.Vehicle, error)
	SetSpecification(ctx context.Context, id uint, spec string) (*models.Vehicle, error)
	ViewAvailability(ctx context.Context, id uint) (*models.VehicleAvailability, error)
}

type VehicleService struct {
	vehicles     repositories.Repository[*models.Vehicle]
	reservations repositories.Repository[*models.Reservation]
	policy       AvailabilityPolicy
	logger       logger.Logger
}

type VehicleServiceOptions struct {
	Vehicles     repositories.Repository[*models.Vehicle]
	Reservations repositories.Repository[*models.Reservation]
	Policy       AvailabilityPolicy
	Logger       logger.Logger
}

func NewVehicleService(opts VehicleServiceOptions) *VehicleService {
	return &VehicleService{
		vehicles:     opts.Vehicles,
		reservations: opts.Reservations,
		policy:       opts.Policy,
		logger:       opts.Logger,
	}
}

func validateDailyRate(rate float64) error {
	if rate < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidRate, "giá thuê theo ngày không được âm", nil)
	}
	return nil
}

func (s *VehicleService) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := validateDailyRate(vehicle.DailyRate); err != nil {
		return nil, err
	}
	created, err := s.vehicles.Add(ctx, vehicle)
	if err != nil {
		s.logger.Error("Lỗi tạo xe: %v", err)
		return nil, err
	}
	s.logger.Info("Đã tạo xe %d (%s %s)", created.ID, created.Make, created.Model)
	return created, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *VehicleService) GetAll(ctx context.Context) ([]*models.Vehicle, error) {
	return s.vehicles.GetAll(ctx)
}

func (s *VehicleService) Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := validateDailyRate(vehicle.DailyRate); err != nil {
		return nil, err
	}
	return s.vehicles.Update(ctx, vehicle)
}

func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	_, err := s.vehicles.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info("Đã xóa xe %d", id)
	return nil
}

// ListAvailable trả về các xe đang bật cờ cho thuê trên danh mục.
func (s *VehicleService) ListAvailable(ctx context.Context) ([]*models.Vehicle, error) {
	all, err := s.vehicles.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Vehicle, 0, len(all))
	for _, v := range all {
		if v.IsListedAvailable() {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

// ListAvailableForInterval trả về các xe đang cho thuê và còn trống
// trong khoảng [pickUp, dropOff].
func (s *VehicleService) ListAvailableForInterval(ctx context.Context, pickUp, dropOff time.Time) ([]*models.Vehicle, error) {
	if err := ValidateInterval(pickUp, dropOff); err != nil {
		return nil, err
	}
	all, err := s.vehicles.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservationsByVehicle(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Vehicle, 0, len(all))
	for _, v := range all {
		if !v.IsListedAvailable() {
			continue
		}
		if s.policy.FirstConflict(reservations[v.ID], pickUp, dropOff) == nil {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

func (s *VehicleService) SetAvailability(ctx context.Context, id uint, available bool) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle.Availability = &available
	updated, err := s.vehicles.Update(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Xe %d đổi cờ cho thuê thành %v", id, available)
	return updated, nil
}

func (s *VehicleService) SetDailyRate(ctx context.Context, id uint, rate float64) (*models.Vehicle, error) {
	if err := validateDailyRate(rate); err != nil {
		return nil, err
	}
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle.DailyRate = rate
	return s.vehicles.Update(ctx, vehicle)
}

func (s *VehicleService) SetSpecification(ctx context.Context, id uint, spec string) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle.Specification = spec
	return s.vehicles.Update(ctx, vehicle)
}

// ViewAvailability trả về cờ cho thuê của xe cùng các khoảng ngày đã bị
// giữ chỗ sắp tới, để khách chọn ngày khác thay vì thử từng lần.
func (s *VehicleService) ViewAvailability(ctx context.Context, id uint) (*models.VehicleAvailability, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservationsByVehicle(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	busy := make([]models.BusyInterval, 0)
	for _, r := range reservations[id] {
		if !r.Status.Blocks() {
			continue
		}
		if r.DropOffDateTime.Before(now) {
			continue
		}
		busy = append(busy, models.BusyInterval{
			PickUpDateTime:  r.PickUpDateTime,
			DropOffDateTime: r.DropOffDateTime,
		})
	}
	return &models.VehicleAvailability{
		VehicleID: vehicle.ID,
		Available: vehicle.IsListedAvailable(),
		Busy:      busy,
	}, nil
}

// reservationsByVehicle gom toàn bộ reservation theo xe. Kho rỗng không
// phải là lỗi ở đây: chưa có đơn nào nghĩa là mọi xe đều trống.
func (s *VehicleService) reservationsByVehicle(ctx context.Context) (map[uint][]*models.Reservation, error) {
	all, err := s.reservations.GetAll(ctx)
	if err != nil {
		if stderrors.Is(err, errors.ErrEmptyList) {
			return map[uint][]*models.Reservation{}, nil
		}
		return nil, fmt.Errorf("lỗi lấy danh sách đặt xe: %w", err)
	}
	byVehicle := make(map[uint][]*models.Reservation)
	for _, r := range all {
		byVehicle[r.VehicleID] = append(byVehicle[r.VehicleID], r)
	}
	return byVehicle, nil
}
