package services

import (
	"context"
	stderrors "errors"

	"roadready/errors"
)

// PendingCountAdapter bọc ReservationService cho cron job báo cáo, chỉ
// lộ ra phép đếm đơn chờ duyệt.
type PendingCountAdapter struct {
	service ReservationServiceInterface
}

func NewPendingCountAdapter(service ReservationServiceInterface) *PendingCountAdapter {
	return &PendingCountAdapter{service: service}
}

func (a *PendingCountAdapter) CountPending() (int, error) {
	reservations, err := a.service.ListPending(context.Background())
	if err != nil {
		if stderrors.Is(err, errors.ErrNoPendingReservations) {
			return 0, nil
		}
		return 0, err
	}
	return len(reservations), nil
}
