package services

import (
	"context"
	stderrors "errors"
	"time"

	"roadready/errors"
	"roadready/models"
	"roadready/repositories"
	"roadready/services/logger"
)

type DiscountServiceInterface interface {
	Create(ctx context.Context, discount *models.Discount) (*models.Discount, error)
	GetByID(ctx context.Context, id uint) (*models.Discount, error)
	GetAll(ctx context.Context) ([]*models.Discount, error)
	ActiveDiscounts(ctx context.Context, at time.Time) ([]*models.Discount, error)
	UpdatePercentage(ctx context.Context, id uint, percentage float64) (*models.Discount, error)
	UpdateEndDate(ctx context.Context, id uint, endDate time.Time) (*models.Discount, error)
	Deactivate(ctx context.Context, id uint) (*models.Discount, error)
	AssignToVehicle(ctx context.Context, discountID, vehicleID uint) error
	RemoveFromVehicle(ctx context.Context, discountID, vehicleID uint) error
	DiscountsOfVehicle(ctx context.Context, vehicleID uint) ([]*models.Discount, error)
	ListDiscountedVehicles(ctx context.Context) ([]*models.Vehicle, error)
	BestActivePercentage(ctx context.Context, vehicleID uint, at time.Time) (float64, error)
	ApplyToReservation(ctx context.Context, reservationID uint, couponCode string) (*models.Reservation, error)
	AppliedDiscounts(ctx context.Context, reservationID uint) ([]*models.Discount, error)
}

type DiscountService struct {
	discounts            repositories.Repository[*models.Discount]
	vehicles             repositories.Repository[*models.Vehicle]
	reservations         repositories.Repository[*models.Reservation]
	vehicleDiscounts     repositories.Repository[*models.VehicleDiscount]
	reservationDiscounts repositories.Repository[*models.ReservationDiscount]
	logger               logger.Logger
}

type DiscountServiceOptions struct {
	Discounts            repositories.Repository[*models.Discount]
	Vehicles             repositories.Repository[*models.Vehicle]
	Reservations         repositories.Repository[*models.Reservation]
	VehicleDiscounts     repositories.Repository[*models.VehicleDiscount]
	ReservationDiscounts repositories.Repository[*models.ReservationDiscount]
	Logger               logger.Logger
}

func NewDiscountService(opts DiscountServiceOptions) *DiscountService {
	return &DiscountService{
		discounts:            opts.Discounts,
		vehicles:             opts.Vehicles,
		reservations:         opts.Reservations,
		vehicleDiscounts:     opts.VehicleDiscounts,
		reservationDiscounts: opts.ReservationDiscounts,
		logger:               opts.Logger,
	}
}

func validatePercentage(percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidPercentage, "phần trăm giảm giá phải nằm trong khoảng 0 đến 100", nil)
	}
	return nil
}

func (s *DiscountService) Create(ctx context.Context, discount *models.Discount) (*models.Discount, error) {
	if err := validatePercentage(discount.Percentage); err != nil {
		return nil, err
	}
	if !discount.EndDate.IsZero() && !discount.EndDate.After(discount.StartDate) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidEndDate, "ngày kết thúc phải sau ngày bắt đầu", nil)
	}
	created, err := s.discounts.Add(ctx, discount)
	if err != nil {
		s.logger.Error("Lỗi tạo mã giảm giá: %v", err)
		return nil, err
	}
	s.logger.Info("Đã tạo mã giảm giá %d (%s, %.1f%%)", created.ID, created.CouponCode, created.Percentage)
	return created, nil
}

func (s *DiscountService) GetByID(ctx context.Context, id uint) (*models.Discount, error) {
	return s.discounts.GetByID(ctx, id)
}

func (s *DiscountService) GetAll(ctx context.Context) ([]*models.Discount, error) {
	return s.discounts.GetAll(ctx)
}

// ActiveDiscounts trả về các mã giảm giá đang hiệu lực tại thời điểm at.
func (s *DiscountService) ActiveDiscounts(ctx context.Context, at time.Time) ([]*models.Discount, error) {
	all, err := s.discounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Discount, 0, len(all))
	for _, d := range all {
		if d.IsActiveAt(at) {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

// UpdatePercentage đổi phần trăm giảm giá. Giá trị ngoài khoảng 0..100 bị
// từ chối trước khi đụng tới bản ghi, không có chuyện ghi dở nửa chừng.
func (s *DiscountService) UpdatePercentage(ctx context.Context, id uint, percentage float64) (*models.Discount, error) {
	if err := validatePercentage(percentage); err != nil {
		return nil, err
	}
	discount, err := s.discounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	discount.Percentage = percentage
	return s.discounts.Update(ctx, discount)
}

// UpdateEndDate gia hạn hoặc rút ngắn thời hạn mã giảm giá. Ngày kết thúc
// mới phải ở tương lai; muốn tắt mã ngay thì dùng Deactivate.
func (s *DiscountService) UpdateEndDate(ctx context.Context, id uint, endDate time.Time) (*models.Discount, error) {
	if !endDate.After(time.Now()) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidEndDate, "ngày kết thúc phải ở tương lai", nil)
	}
	discount, err := s.discounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	discount.EndDate = endDate
	return s.discounts.Update(ctx, discount)
}

// Deactivate kết thúc mã giảm giá ngay lập tức bằng cách kéo EndDate về
// hiện tại. Các reservation đã chốt giá trước đó không bị tính lại.
func (s *DiscountService) Deactivate(ctx context.Context, id uint) (*models.Discount, error) {
	discount, err := s.discounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	discount.EndDate = time.Now()
	updated, err := s.discounts.Update(ctx, discount)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Đã tắt mã giảm giá %d (%s)", id, discount.CouponCode)
	return updated, nil
}

// AssignToVehicle gắn mã giảm giá vào một xe.
func (s *DiscountService) AssignToVehicle(ctx context.Context, discountID, vehicleID uint) error {
	if _, err := s.discounts.GetByID(ctx, discountID); err != nil {
		return err
	}
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return err
	}
	links, err := s.vehicleLinks(ctx)
	if err != nil {
		return err
	}
	for _, l := range links {
		if l.DiscountID == discountID && l.VehicleID == vehicleID {
			return errors.ErrAlreadyExists
		}
	}
	if _, err := s.vehicleDiscounts.Add(ctx, &models.VehicleDiscount{
		VehicleID:  vehicleID,
		DiscountID: discountID,
	}); err != nil {
		return err
	}
	s.logger.Info("Đã gắn mã giảm giá %d vào xe %d", discountID, vehicleID)
	return nil
}

// RemoveFromVehicle gỡ mã giảm giá khỏi xe. Gỡ một mã chưa từng gắn trả
// về ErrDiscountNotAssigned.
func (s *DiscountService) RemoveFromVehicle(ctx context.Context, discountID, vehicleID uint) error {
	links, err := s.vehicleLinks(ctx)
	if err != nil {
		return err
	}
	for _, l := range links {
		if l.DiscountID == discountID && l.VehicleID == vehicleID {
			if _, err := s.vehicleDiscounts.Delete(ctx, l.ID); err != nil {
				return err
			}
			s.logger.Info("Đã gỡ mã giảm giá %d khỏi xe %d", discountID, vehicleID)
			return nil
		}
	}
	return errors.ErrDiscountNotAssigned
}

// DiscountsOfVehicle trả về các mã giảm giá đang gắn với xe.
func (s *DiscountService) DiscountsOfVehicle(ctx context.Context, vehicleID uint) ([]*models.Discount, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	links, err := s.vehicleLinks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Discount, 0)
	for _, l := range links {
		if l.VehicleID != vehicleID {
			continue
		}
		d, err := s.discounts.GetByID(ctx, l.DiscountID)
		if err != nil {
			if stderrors.Is(err, errors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

// ListDiscountedVehicles trả về các xe đang có ít nhất một mã giảm giá
// còn hiệu lực.
func (s *DiscountService) ListDiscountedVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	links, err := s.vehicleLinks(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	seen := make(map[uint]bool)
	out := make([]*models.Vehicle, 0)
	for _, l := range links {
		if seen[l.VehicleID] {
			continue
		}
		d, err := s.discounts.GetByID(ctx, l.DiscountID)
		if err != nil || !d.IsActiveAt(now) {
			continue
		}
		v, err := s.vehicles.GetByID(ctx, l.VehicleID)
		if err != nil {
			continue
		}
		seen[l.VehicleID] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

// BestActivePercentage trả về phần trăm giảm cao nhất trong các mã đang
// hiệu lực gắn với xe. Xe không có mã nào trả về 0.
func (s *DiscountService) BestActivePercentage(ctx context.Context, vehicleID uint, at time.Time) (float64, error) {
	links, err := s.vehicleLinks(ctx)
	if err != nil {
		return 0, err
	}
	best := 0.0
	for _, l := range links {
		if l.VehicleID != vehicleID {
			continue
		}
		d, err := s.discounts.GetByID(ctx, l.DiscountID)
		if err != nil {
			if stderrors.Is(err, errors.ErrNotFound) {
				continue
			}
			return 0, err
		}
		if d.IsActiveAt(at) && d.Percentage > best {
			best = d.Percentage
		}
	}
	return best, nil
}

// ApplyToReservation áp mã giảm giá theo coupon code vào một reservation
// đã có. Code không tồn tại hoặc đã hết hạn thì giữ nguyên giá, không coi
// là lỗi.
func (s *DiscountService) ApplyToReservation(ctx context.Context, reservationID uint, couponCode string) (*models.Reservation, error) {
	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	discount := s.findByCoupon(ctx, couponCode)
	if discount == nil || !discount.IsActiveAt(time.Now()) {
		s.logger.Info("Coupon %q không áp được cho reservation %d, giữ nguyên giá", couponCode, reservationID)
		return reservation, nil
	}

	days := RentalDays(reservation.PickUpDateTime, reservation.DropOffDateTime)
	vehicle, err := s.vehicles.GetByID(ctx, reservation.VehicleID)
	if err != nil {
		return nil, err
	}
	reservation.TotalPrice = float64(days) * vehicle.DailyRate * (1 - discount.Percentage/100)

	updated, err := s.reservations.Update(ctx, reservation)
	if err != nil {
		return nil, err
	}
	if _, err := s.reservationDiscounts.Add(ctx, &models.ReservationDiscount{
		ReservationID: reservationID,
		DiscountID:    discount.ID,
	}); err != nil {
		return nil, err
	}
	s.logger.Info("Đã áp coupon %q (%.1f%%) cho reservation %d, giá mới %.2f",
		couponCode, discount.Percentage, reservationID, updated.TotalPrice)
	return updated, nil
}

// AppliedDiscounts trả về các mã giảm giá đã áp vào một reservation.
func (s *DiscountService) AppliedDiscounts(ctx context.Context, reservationID uint) ([]*models.Discount, error) {
	if _, err := s.reservations.GetByID(ctx, reservationID); err != nil {
		return nil, err
	}
	links, err := s.reservationDiscounts.GetAll(ctx)
	if err != nil {
		if stderrors.Is(err, errors.ErrEmptyList) {
			return nil, errors.ErrEmptyList
		}
		return nil, err
	}
	out := make([]*models.Discount, 0)
	for _, l := range links {
		if l.ReservationID != reservationID {
			continue
		}
		d, err := s.discounts.GetByID(ctx, l.DiscountID)
		if err != nil {
			if stderrors.Is(err, errors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

func (s *DiscountService) findByCoupon(ctx context.Context, couponCode string) *models.Discount {
	if couponCode == "" {
		return nil
	}
	all, err := s.discounts.GetAll(ctx)
	if err != nil {
		return nil
	}
	for _, d := range all {
		if d.CouponCode == couponCode {
			return d
		}
	}
	return nil
}

func (s *DiscountService) vehicleLinks(ctx context.Context) ([]*models.VehicleDiscount, error) {
	links, err := s.vehicleDiscounts.GetAll(ctx)
	if err != nil {
		if stderrors.Is(err, errors.ErrEmptyList) {
			return nil, nil
		}
		return nil, err
	}
	return links, nil
}
