package services

import (
	"errors"
	"testing"
	"time"

	apperrors "roadready/errors"
	"roadready/models"
)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 10, 0, 0, 0, time.UTC)
}

func TestValidateInterval(t *testing.T) {
	if err := ValidateInterval(day(1), day(3)); err != nil {
		t.Errorf("khoảng hợp lệ bị từ chối: %v", err)
	}
	if err := ValidateInterval(day(1), day(1)); !errors.Is(err, apperrors.ErrInvalidInterval) {
		t.Errorf("nhận và trả cùng mốc: muốn ErrInvalidInterval, nhận %v", err)
	}
	if err := ValidateInterval(day(3), day(1)); !errors.Is(err, apperrors.ErrInvalidInterval) {
		t.Errorf("trả xe trước nhận xe: muốn ErrInvalidInterval, nhận %v", err)
	}
	if err := ValidateInterval(time.Time{}, day(1)); !errors.Is(err, apperrors.ErrInvalidInterval) {
		t.Errorf("mốc rỗng: muốn ErrInvalidInterval, nhận %v", err)
	}
}

func TestConflicts(t *testing.T) {
	existing := &models.Reservation{
		PickUpDateTime:  day(10),
		DropOffDateTime: day(15),
		Status:          models.ReservationStatusConfirmed,
	}
	policy := AvailabilityPolicy{}

	tests := []struct {
		name    string
		pickUp  time.Time
		dropOff time.Time
		want    bool
	}{
		{"trùng hoàn toàn", day(10), day(15), true},
		{"giao một phần đầu", day(8), day(12), true},
		{"giao một phần cuối", day(13), day(18), true},
		{"bao trùm toàn bộ", day(8), day(18), true},
		{"nằm trong", day(11), day(12), true},
		{"chạm biên cuối", day(15), day(20), true},
		{"chạm biên đầu", day(5), day(10), true},
		{"trước hẳn", day(1), day(5), false},
		{"sau hẳn", day(16), day(20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Conflicts(existing, tt.pickUp, tt.dropOff); got != tt.want {
				t.Errorf("Conflicts(%v, %v) = %v, muốn %v", tt.pickUp, tt.dropOff, got, tt.want)
			}
		})
	}
}

func TestConflictsAllowBackToBack(t *testing.T) {
	existing := &models.Reservation{
		PickUpDateTime:  day(10),
		DropOffDateTime: day(15),
		Status:          models.ReservationStatusConfirmed,
	}
	policy := AvailabilityPolicy{AllowBackToBack: true}

	if policy.Conflicts(existing, day(15), day(20)) {
		t.Error("nối đuôi sát biên cuối phải được phép khi AllowBackToBack")
	}
	if policy.Conflicts(existing, day(5), day(10)) {
		t.Error("nối đuôi sát biên đầu phải được phép khi AllowBackToBack")
	}
	if !policy.Conflicts(existing, day(14), day(20)) {
		t.Error("giao thực sự vẫn phải bị chặn khi AllowBackToBack")
	}
}

func TestCancelledDoesNotConflict(t *testing.T) {
	cancelled := &models.Reservation{
		PickUpDateTime:  day(10),
		DropOffDateTime: day(15),
		Status:          models.ReservationStatusCancelled,
	}
	policy := AvailabilityPolicy{}
	if policy.Conflicts(cancelled, day(10), day(15)) {
		t.Error("đơn đã hủy không được giữ chỗ")
	}
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name    string
		pickUp  time.Time
		dropOff time.Time
		want    int
	}{
		{"ba ngày tròn", day(1), day(4), 3},
		{"dưới một ngày", day(1), day(1).Add(6 * time.Hour), 1},
		{"hai ngày rưỡi làm tròn lên", day(1), day(3).Add(12 * time.Hour), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RentalDays(tt.pickUp, tt.dropOff); got != tt.want {
				t.Errorf("RentalDays = %d, muốn %d", got, tt.want)
			}
		})
	}
}
