package services

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"roadready/errors"
	"roadready/models"
	"roadready/repositories"
	"roadready/services/logger"
	"roadready/services/notification"
)

// Pricer cho biết phần trăm giảm giá tốt nhất đang áp cho một xe.
type Pricer interface {
	BestActivePercentage(ctx context.Context, vehicleID uint, at time.Time) (float64, error)
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error)
	GetByID(ctx context.Context, id uint) (*models.Reservation, error)
	GetAll(ctx context.Context) ([]*models.Reservation, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Reservation, error)
	ListByVehicle(ctx context.Context, vehicleID uint) ([]*models.Reservation, error)
	ListPending(ctx context.Context) ([]*models.Reservation, error)
	UpdateStatus(ctx context.Context, id uint, to models.ReservationStatus) (*models.Reservation, error)
	UpdatePrice(ctx context.Context, id uint, price float64) (*models.Reservation, error)
	Cancel(ctx context.Context, id uint) (*models.Reservation, error)
}

type CreateReservationInput struct {
	UserID          uint
	VehicleID       uint
	PickUpDateTime  time.Time
	DropOffDateTime time.Time
	CouponCode      string
}

type ReservationService struct {
	reservations repositories.Repository[*models.Reservation]
	vehicles     repositories.Repository[*models.Vehicle]
	pricer       Pricer
	policy       AvailabilityPolicy
	notifier     notification.Service
	logger       logger.Logger

	// vehicleLocks serialize toàn bộ đoạn kiểm-tra-rồi-ghi khi tạo đơn
	// cho cùng một xe. Hai request tạo đơn trùng ngày cho cùng xe sẽ đi
	// qua lock lần lượt, request sau nhìn thấy đơn của request trước.
	mu           sync.Mutex
	vehicleLocks map[uint]*sync.Mutex
}

type ReservationServiceOptions struct {
	Reservations repositories.Repository[*models.Reservation]
	Vehicles     repositories.Repository[*models.Vehicle]
	Pricer       Pricer
	Policy       AvailabilityPolicy
	Notifier     notification.Service
	Logger       logger.Logger
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	return &ReservationService{
		reservations: opts.Reservations,
		vehicles:     opts.Vehicles,
		pricer:       opts.Pricer,
		policy:       opts.Policy,
		notifier:     opts.Notifier,
		logger:       opts.Logger,
		vehicleLocks: make(map[uint]*sync.Mutex),
	}
}

func (s *ReservationService) lockVehicle(vehicleID uint) *sync.Mutex {
	s.mu.Lock()
	lock, ok := s.vehicleLocks[vehicleID]
	if !ok {
		lock = &sync.Mutex{}
		s.vehicleLocks[vehicleID] = lock
	}
	s.mu.Unlock()
	lock.Lock()
	return lock
}

// Create tạo một reservation mới ở trạng thái Pending. Kiểm tra trùng
// lịch và ghi bản ghi mới diễn ra dưới lock theo xe nên không có chuyện
// hai đơn trùng ngày cùng lọt qua.
func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	if err := ValidateInterval(input.PickUpDateTime, input.DropOffDateTime); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.BlocksBooking() {
		return nil, errors.ErrVehicleNotAvailable
	}

	lock := s.lockVehicle(input.VehicleID)
	defer lock.Unlock()

	existing, err := s.ListByVehicle(ctx, input.VehicleID)
	if err != nil && !stderrors.Is(err, errors.ErrEmptyList) {
		return nil, err
	}
	if conflict := s.policy.FirstConflict(existing, input.PickUpDateTime, input.DropOffDateTime); conflict != nil {
		s.logger.Info("Xe %d đã có đơn %d trùng khoảng %s - %s",
			input.VehicleID, conflict.ID,
			input.PickUpDateTime.Format(time.RFC3339), input.DropOffDateTime.Format(time.RFC3339))
		return nil, errors.ErrReservationConflict
	}

	price, err := s.computePrice(ctx, vehicle, input.PickUpDateTime, input.DropOffDateTime)
	if err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		UserID:          input.UserID,
		VehicleID:       input.VehicleID,
		PickUpDateTime:  input.PickUpDateTime,
		DropOffDateTime: input.DropOffDateTime,
		Status:          models.ReservationStatusPending,
		TotalPrice:      price,
	}
	created, err := s.reservations.Add(ctx, reservation)
	if err != nil {
		s.logger.Error("Lỗi tạo reservation: %v", err)
		return nil, err
	}

	s.logger.Info("Đã tạo reservation %d cho xe %d, giá %.2f", created.ID, created.VehicleID, created.TotalPrice)
	s.notify(created)
	return created, nil
}

// computePrice tính tổng giá: số ngày thuê nhân giá ngày, trừ phần trăm
// giảm giá tốt nhất đang hiệu lực của xe.
func (s *ReservationService) computePrice(ctx context.Context, vehicle *models.Vehicle, pickUp, dropOff time.Time) (float64, error) {
	days := RentalDays(pickUp, dropOff)
	price := float64(days) * vehicle.DailyRate
	if s.pricer != nil {
		pct, err := s.pricer.BestActivePercentage(ctx, vehicle.ID, pickUp)
		if err != nil {
			return 0, err
		}
		price *= 1 - pct/100
	}
	return price, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *ReservationService) GetAll(ctx context.Context) ([]*models.Reservation, error) {
	return s.reservations.GetAll(ctx)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID uint) ([]*models.Reservation, error) {
	return s.filter(ctx, func(r *models.Reservation) bool { return r.UserID == userID })
}

func (s *ReservationService) ListByVehicle(ctx context.Context, vehicleID uint) ([]*models.Reservation, error) {
	return s.filter(ctx, func(r *models.Reservation) bool { return r.VehicleID == vehicleID })
}

// ListPending trả về các đơn đang chờ duyệt cho admin.
func (s *ReservationService) ListPending(ctx context.Context) ([]*models.Reservation, error) {
	out, err := s.filter(ctx, func(r *models.Reservation) bool {
		return r.Status == models.ReservationStatusPending
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrEmptyList) {
			return nil, errors.ErrNoPendingReservations
		}
		return nil, err
	}
	return out, nil
}

// UpdateStatus chuyển trạng thái đơn theo bảng chuyển hợp lệ. Chuyển
// ngược (ví dụ Cancelled về Confirmed) bị từ chối.
func (s *ReservationService) UpdateStatus(ctx context.Context, id uint, to models.ReservationStatus) (*models.Reservation, error) {
	if _, err := models.ParseReservationStatus(string(to)); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "trạng thái không hợp lệ", err)
	}
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(reservation.Status, to) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition,
			"không thể chuyển trạng thái từ "+string(reservation.Status)+" sang "+string(to), nil)
	}
	if reservation.Status == to {
		return reservation, nil
	}
	reservation.Status = to
	updated, err := s.reservations.Update(ctx, reservation)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Reservation %d chuyển sang %s", id, to)
	s.notify(updated)
	return updated, nil
}

// UpdatePrice chỉnh tổng giá của đơn (admin điều chỉnh thủ công). Giá âm
// bị từ chối như mọi chỗ khác nhận giá tiền.
func (s *ReservationService) UpdatePrice(ctx context.Context, id uint, price float64) (*models.Reservation, error) {
	if price < 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPrice, "tổng giá không được âm", nil)
	}
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reservation.TotalPrice = price
	return s.reservations.Update(ctx, reservation)
}

// Cancel hủy đơn và trả khoảng ngày lại cho xe. Hủy một đơn đã hủy là
// no-op, không phải lỗi.
func (s *ReservationService) Cancel(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.UpdateStatus(ctx, id, models.ReservationStatusCancelled)
}

// DeriveDisplayStatus suy ra trạng thái hiển thị cho khách: đơn đã hủy
// hiện Cancelled, mọi đơn còn lại hiện Reserved.
func DeriveDisplayStatus(r *models.Reservation) string {
	if r.Status == models.ReservationStatusCancelled {
		return string(models.ReservationStatusCancelled)
	}
	return string(models.ReservationStatusReserved)
}

func (s *ReservationService) filter(ctx context.Context, keep func(*models.Reservation) bool) ([]*models.Reservation, error) {
	all, err := s.reservations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Reservation, 0, len(all))
	for _, r := range all {
		if keep(r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

func (s *ReservationService) notify(r *models.Reservation) {
	if s.notifier == nil {
		return
	}
	message := notification.NewMessageBuilder(r.ID, r.VehicleID, string(r.Status)).Build()
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("Lỗi gửi thông báo: %v", err)
	}
}
