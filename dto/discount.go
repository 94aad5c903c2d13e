package dto

// CreateDiscountRequest là DTO cho request tạo mã giảm giá
type CreateDiscountRequest struct {
	Name       string  `json:"name" binding:"required"`
	CouponCode string  `json:"couponCode" binding:"required"`
	Percentage float64 `json:"percentage"`
	StartDate  string  `json:"startDate" binding:"required"`
	EndDate    string  `json:"endDate" binding:"required"`
}

// UpdatePercentageRequest là DTO cho request đổi phần trăm giảm
type UpdatePercentageRequest struct {
	Percentage float64 `json:"percentage"`
}

// UpdateEndDateRequest là DTO cho request gia hạn mã giảm giá
type UpdateEndDateRequest struct {
	EndDate string `json:"endDate" binding:"required"`
}

// AssignDiscountRequest là DTO cho request gắn mã giảm giá vào xe
type AssignDiscountRequest struct {
	VehicleID uint `json:"vehicleId" binding:"required"`
}

// DiscountResponse là DTO cho response của mã giảm giá
type DiscountResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	CouponCode string  `json:"couponCode"`
	Percentage float64 `json:"percentage"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Active     bool    `json:"active"`
}
