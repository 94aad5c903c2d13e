package models

import "fmt"

// ReservationStatus là trạng thái của một lần đặt xe (lưu dưới dạng chuỗi)
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusReserved  ReservationStatus = "Reserved"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// allowTransition định nghĩa các bước chuyển trạng thái hợp lệ.
// Cancelled là trạng thái cuối, không chuyển đi đâu được nữa.
var allowTransition = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusReserved, ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusReserved:  {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCancelled},
	ReservationStatusCancelled: {},
}

// Blocks cho biết trạng thái này có giữ chỗ trên lịch xe hay không.
// Chỉ Cancelled là trả xe lại cho khoảng ngày đó.
func (s ReservationStatus) Blocks() bool {
	return s != ReservationStatusCancelled
}

// ParseReservationStatus kiểm tra chuỗi trạng thái có nằm trong tập hợp lệ không
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationStatusPending, ReservationStatusReserved,
		ReservationStatusConfirmed, ReservationStatusCancelled:
		return ReservationStatus(s), nil
	}
	return "", fmt.Errorf("invalid reservation status: %q", s)
}

// CanTransition kiểm tra from -> to có phải là bước chuyển hợp lệ không.
// Chuyển về chính trạng thái hiện tại luôn được phép (hủy một reservation
// đã hủy là no-op).
func CanTransition(from, to ReservationStatus) bool {
	if from == to {
		return true
	}
	for _, s := range allowTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}
