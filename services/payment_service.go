package services

import (
	"context"
	stderrors "errors"
	"time"

	"roadready/constants"
	"roadready/errors"
	"roadready/models"
	"roadready/repositories"
	"roadready/services/logger"
)

type PaymentServiceInterface interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	GetByReservation(ctx context.Context, reservationID uint) (*models.Payment, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status int) (*models.Payment, error)
}

type PaymentService struct {
	payments     repositories.Repository[*models.Payment]
	reservations repositories.Repository[*models.Reservation]
	logger       logger.Logger
}

type PaymentServiceOptions struct {
	Payments     repositories.Repository[*models.Payment]
	Reservations repositories.Repository[*models.Reservation]
	Logger       logger.Logger
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	return &PaymentService{
		payments:     opts.Payments,
		reservations: opts.Reservations,
		logger:       opts.Logger,
	}
}

// Create ghi nhận thanh toán cho một reservation. Mỗi reservation chỉ có
// một thanh toán; ghi lần hai trả về ErrAlreadyExists.
func (s *PaymentService) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if payment.Amount < 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "số tiền thanh toán không được âm", nil)
	}
	reservation, err := s.reservations.GetByID(ctx, payment.ReservationID)
	if err != nil {
		return nil, err
	}
	if existing, err := s.GetByReservation(ctx, payment.ReservationID); err == nil && existing != nil {
		return nil, errors.ErrAlreadyExists
	} else if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return nil, err
	}

	payment.UserID = reservation.UserID
	payment.VehicleID = reservation.VehicleID
	if payment.TransactionDate.IsZero() {
		payment.TransactionDate = time.Now()
	}
	created, err := s.payments.Add(ctx, payment)
	if err != nil {
		s.logger.Error("Lỗi tạo thanh toán: %v", err)
		return nil, err
	}
	s.logger.Info("Đã ghi nhận thanh toán %d cho reservation %d, số tiền %.2f",
		created.ID, created.ReservationID, created.Amount)
	return created, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *PaymentService) GetByReservation(ctx context.Context, reservationID uint) (*models.Payment, error) {
	all, err := s.payments.GetAll(ctx)
	if err != nil {
		if stderrors.Is(err, errors.ErrEmptyList) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	for _, p := range all {
		if p.ReservationID == reservationID {
			return p, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (s *PaymentService) ListByUser(ctx context.Context, userID uint) ([]*models.Payment, error) {
	all, err := s.payments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Payment, 0, len(all))
	for _, p := range all {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

// UpdateStatus đổi trạng thái thanh toán (pending / success / failed /
// refunded).
func (s *PaymentService) UpdateStatus(ctx context.Context, id uint, status int) (*models.Payment, error) {
	if status < constants.PaymentStatusPending || status > constants.PaymentStatusRefunded {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "trạng thái thanh toán không hợp lệ", nil)
	}
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payment.Status = status
	updated, err := s.payments.Update(ctx, payment)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Thanh toán %d chuyển sang trạng thái %d", id, status)
	return updated, nil
}
