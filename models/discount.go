package models

import (
	"time"
)

type Discount struct {
	ID         uint      `json:"id" gorm:"primaryKey"`            // ID cho giảm giá
	Name       string    `json:"name"`                            // Tên của chương trình giảm giá
	CouponCode string    `json:"couponCode,omitempty"`            // Mã coupon (nếu có)
	StartDate  time.Time `json:"startDate"`                       // Ngày bắt đầu chương trình giảm giá
	EndDate    time.Time `json:"endDate"`                         // Ngày kết thúc chương trình giảm giá
	Percentage float64   `json:"percentage"`                      // Mức giảm giá (0 - 100)
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *Discount) GetID() uint {
	return d.ID
}

func (d *Discount) SetID(id uint) {
	d.ID = id
}

func (d *Discount) GetName() string {
	return d.Name
}

// IsActiveAt kiểm tra giảm giá còn hiệu lực tại thời điểm now không
func (d *Discount) IsActiveAt(now time.Time) bool {
	return !now.Before(d.StartDate) && !now.After(d.EndDate)
}
