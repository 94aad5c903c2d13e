package models

import (
	"time"
)

type Vehicle struct {
	ID            uint      `json:"id" gorm:"primaryKey"`            // ID của xe
	Make          string    `json:"make"`                            // Hãng xe
	Model         string    `json:"model"`                           // Dòng xe
	Year          int       `json:"year"`                            // Năm sản xuất
	Availability  *bool     `json:"availability" gorm:"default:true"`
	DailyRate     float64   `json:"dailyRate"`                       // Giá thuê theo ngày
	ImageURL      string    `json:"imageUrl,omitempty"`
	Specification string    `json:"specification"`                   // Mô tả thông số
	DiscountID    *uint     `json:"discountId,omitempty"`            // Mã giảm giá chính (nếu có)
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (v *Vehicle) GetID() uint {
	return v.ID
}

func (v *Vehicle) SetID(id uint) {
	v.ID = id
}

// IsListedAvailable cho biết xe có được bật cờ sẵn sàng cho thuê hay không.
// Cờ nil (chưa từng set) không được tính là sẵn sàng khi liệt kê.
func (v *Vehicle) IsListedAvailable() bool {
	return v.Availability != nil && *v.Availability
}

// BlocksBooking cho biết cờ cho thuê có chặn việc đặt xe không. Chỉ cờ
// tắt tường minh mới chặn; cờ nil vẫn cho đặt.
func (v *Vehicle) BlocksBooking() bool {
	return v.Availability != nil && !*v.Availability
}
