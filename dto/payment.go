package dto

import "time"

// CreatePaymentRequest là DTO cho request thanh toán một đơn đặt xe
type CreatePaymentRequest struct {
	ReservationID uint    `json:"reservationId" binding:"required"`
	Method        string  `json:"method" binding:"required"`
	Amount        float64 `json:"amount"`
	CouponCode    string  `json:"couponCode,omitempty"`
}

// UpdatePaymentStatusRequest là DTO cho request đổi trạng thái thanh toán
type UpdatePaymentStatusRequest struct {
	Status int `json:"status"`
}

// PaymentResponse là DTO cho response của thanh toán
type PaymentResponse struct {
	ID              uint      `json:"id"`
	ReservationID   uint      `json:"reservationId"`
	UserID          uint      `json:"userId"`
	VehicleID       uint      `json:"vehicleId"`
	Method          string    `json:"method"`
	Amount          float64   `json:"amount"`
	Status          int       `json:"status"`
	TransactionDate time.Time `json:"transactionDate"`
}
