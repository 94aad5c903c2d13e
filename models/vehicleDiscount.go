package models

import "time"

// VehicleDiscount là bảng nối giữa xe và mã giảm giá.
// Quan hệ nhiều-nhiều được quản lý qua các bản ghi nối thay vì
// navigation property hai chiều để tránh vòng tham chiếu.
type VehicleDiscount struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	VehicleID  uint      `gorm:"not null;index" json:"vehicleId"`
	DiscountID uint      `gorm:"not null;index" json:"discountId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (vd *VehicleDiscount) GetID() uint {
	return vd.ID
}

func (vd *VehicleDiscount) SetID(id uint) {
	vd.ID = id
}
