package dto

// CreateReservationRequest là DTO cho request đặt xe
type CreateReservationRequest struct {
	VehicleID       uint   `json:"vehicleId" binding:"required"`
	PickUpDateTime  string `json:"pickUpDateTime" binding:"required"`
	DropOffDateTime string `json:"dropOffDateTime" binding:"required"`
	CouponCode      string `json:"couponCode,omitempty"`
}

// UpdateReservationStatusRequest là DTO cho request đổi trạng thái đơn
type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateReservationPriceRequest là DTO cho request admin chỉnh giá
type UpdateReservationPriceRequest struct {
	TotalPrice float64 `json:"totalPrice"`
}

// ApplyDiscountRequest là DTO cho request áp coupon vào đơn
type ApplyDiscountRequest struct {
	CouponCode string `json:"couponCode" binding:"required"`
}

// ReservationResponse là DTO cho response của đơn đặt xe
type ReservationResponse struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"userId"`
	VehicleID       uint    `json:"vehicleId"`
	PickUpDateTime  string  `json:"pickUpDateTime"`
	DropOffDateTime string  `json:"dropOffDateTime"`
	Status          string  `json:"status"`
	DisplayStatus   string  `json:"displayStatus"`
	TotalPrice      float64 `json:"totalPrice"`
}
