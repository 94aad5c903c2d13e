package models

import (
	"fmt"
	"time"
)

type Payment struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Method          string    `json:"method"`                   // Phương thức thanh toán
	Amount          float64   `json:"amount"`                   // Số tiền thanh toán
	Status          int       `json:"status" gorm:"default:0"`  // Trạng thái (xem constants)
	TransactionDate time.Time `json:"transactionDate" gorm:"autoCreateTime"`
	CouponCode      string    `json:"couponCode,omitempty"`
	ReservationID   uint      `json:"reservationId" gorm:"uniqueIndex"` // 1-1 với reservation
	UserID          uint      `json:"userId"`
	VehicleID       uint      `json:"vehicleId"`
	DiscountID      *uint     `json:"discountId,omitempty"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Payment) GetID() uint {
	return p.ID
}

func (p *Payment) SetID(id uint) {
	p.ID = id
}

func (p *Payment) ValidateStatus() error {
	if p.Status < 0 || p.Status > 3 {
		return fmt.Errorf("invalid payment status: %d, must be between 0 and 3", p.Status)
	}
	return nil
}
