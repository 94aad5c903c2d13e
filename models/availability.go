package models

import "time"

// BusyInterval là một khoảng ngày xe đã bị giữ chỗ
type BusyInterval struct {
	PickUpDateTime  time.Time `json:"pickUpDateTime"`
	DropOffDateTime time.Time `json:"dropOffDateTime"`
}

// VehicleAvailability là kết quả tra cứu lịch trống của một xe
type VehicleAvailability struct {
	VehicleID uint           `json:"vehicleId"`
	Available bool           `json:"available"`
	Busy      []BusyInterval `json:"busy"`
}
