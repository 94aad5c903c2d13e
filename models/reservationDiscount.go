package models

import "time"

// ReservationDiscount là bảng nối giữa reservation và mã giảm giá đã áp dụng
type ReservationDiscount struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReservationID uint      `gorm:"not null;index" json:"reservationId"`
	DiscountID    uint      `gorm:"not null;index" json:"discountId"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (rd *ReservationDiscount) GetID() uint {
	return rd.ID
}

func (rd *ReservationDiscount) SetID(id uint) {
	rd.ID = id
}
