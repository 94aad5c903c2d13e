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

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	ListByVehicle(ctx context.Context, vehicleID uint) ([]*models.Review, error)
	AverageRating(ctx context.Context, vehicleID uint) (float64, error)
	Delete(ctx context.Context, id uint) error
}

type ReviewService struct {
	reviews  repositories.Repository[*models.Review]
	vehicles repositories.Repository[*models.Vehicle]
	logger   logger.Logger
}

type ReviewServiceOptions struct {
	Reviews  repositories.Repository[*models.Review]
	Vehicles repositories.Repository[*models.Vehicle]
	Logger   logger.Logger
}

func NewReviewService(opts ReviewServiceOptions) *ReviewService {
	return &ReviewService{
		reviews:  opts.Reviews,
		vehicles: opts.Vehicles,
		logger:   opts.Logger,
	}
}

func (s *ReviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := review.ValidateRating(); err != nil {
		return nil, err
	}
	if _, err := s.vehicles.GetByID(ctx, review.VehicleID); err != nil {
		return nil, err
	}
	if review.ReviewDate.IsZero() {
		review.ReviewDate = time.Now()
	}
	created, err := s.reviews.Add(ctx, review)
	if err != nil {
		s.logger.Error("Lỗi tạo đánh giá: %v", err)
		return nil, err
	}
	s.logger.Info("User %d đánh giá xe %d: %d sao", created.UserID, created.VehicleID, created.Rating)
	return created, nil
}

func (s *ReviewService) ListByVehicle(ctx context.Context, vehicleID uint) ([]*models.Review, error) {
	all, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Review, 0, len(all))
	for _, r := range all {
		if r.VehicleID == vehicleID {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, errors.ErrEmptyList
	}
	return out, nil
}

// AverageRating tính điểm trung bình của xe. Xe chưa có đánh giá nào trả
// về 0.
func (s *ReviewService) AverageRating(ctx context.Context, vehicleID uint) (float64, error) {
	reviews, err := s.ListByVehicle(ctx, vehicleID)
	if err != nil {
		if stderrors.Is(err, errors.ErrEmptyList) {
			return 0, nil
		}
		return 0, err
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews)), nil
}

func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	_, err := s.reviews.Delete(ctx, id)
	return err
}
