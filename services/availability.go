package services

import (
	"time"

	"roadready/errors"
	"roadready/models"
)

// AvailabilityPolicy quyết định hai khoảng đặt xe thế nào thì đụng nhau.
// Khoảng đặt là khoảng đóng [PickUp, DropOff]. Mặc định hai đơn chạm nhau
// tại biên (trả xe 10:00, nhận xe 10:00 cùng ngày) vẫn tính là trùng;
// bật AllowBackToBack để cho phép nối đuôi sát biên.
type AvailabilityPolicy struct {
	AllowBackToBack bool
}

// ValidateInterval kiểm tra khoảng ngày đặt xe. PickUp phải đứng trước
// DropOff; hai mốc trùng nhau cũng không hợp lệ.
func ValidateInterval(pickUp, dropOff time.Time) error {
	if pickUp.IsZero() || dropOff.IsZero() {
		return errors.ErrInvalidInterval
	}
	if !pickUp.Before(dropOff) {
		return errors.ErrInvalidInterval
	}
	return nil
}

// Conflicts kiểm tra một reservation hiện có có chặn khoảng [pickUp, dropOff]
// không. Reservation đã hủy không giữ chỗ.
func (p AvailabilityPolicy) Conflicts(r *models.Reservation, pickUp, dropOff time.Time) bool {
	if !r.Status.Blocks() {
		return false
	}
	if p.AllowBackToBack {
		// Khoảng mở hai đầu: chạm biên không tính trùng.
		return pickUp.Before(r.DropOffDateTime) && dropOff.After(r.PickUpDateTime)
	}
	return r.Overlaps(pickUp, dropOff)
}

// FirstConflict trả về reservation đầu tiên đụng khoảng ngày yêu cầu,
// hoặc nil nếu khoảng đó còn trống.
func (p AvailabilityPolicy) FirstConflict(existing []*models.Reservation, pickUp, dropOff time.Time) *models.Reservation {
	for _, r := range existing {
		if p.Conflicts(r, pickUp, dropOff) {
			return r
		}
	}
	return nil
}

// RentalDays tính số ngày tính tiền của khoảng đặt. Phần ngày lẻ được
// làm tròn lên, thuê trong ngày tính một ngày.
func RentalDays(pickUp, dropOff time.Time) int {
	hours := dropOff.Sub(pickUp).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
