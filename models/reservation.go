package models

import (
	"time"
)

type Reservation struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	PickUpDateTime  time.Time         `json:"pickUpDateTime"`  // Thời điểm nhận xe
	DropOffDateTime time.Time         `json:"dropOffDateTime"` // Thời điểm trả xe
	Status          ReservationStatus `json:"status" gorm:"type:varchar(16);default:'Pending'"`
	TotalPrice      float64           `json:"totalPrice"`
	VehicleID       uint              `json:"vehicleId"`
	Vehicle         *Vehicle          `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	UserID          uint              `json:"userId"`
	User            *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Payment         *Payment          `json:"payment,omitempty" gorm:"foreignKey:ReservationID"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Reservation) GetID() uint {
	return r.ID
}

func (r *Reservation) SetID(id uint) {
	r.ID = id
}

// Overlaps kiểm tra khoảng [start, end] có giao với khoảng thuê của
// reservation này không (đầu mút tính là giao nhau)
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return !start.After(r.DropOffDateTime) && !end.Before(r.PickUpDateTime)
}
