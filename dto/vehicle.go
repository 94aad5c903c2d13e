package dto

// CreateVehicleRequest là DTO cho request tạo xe mới
type CreateVehicleRequest struct {
	Make          string  `json:"make" binding:"required"`
	Model         string  `json:"model" binding:"required"`
	Year          int     `json:"year"`
	DailyRate     float64 `json:"dailyRate"`
	Specification string  `json:"specification"`
	Availability  *bool   `json:"availability"`
}

// UpdateVehicleRequest là DTO cho request cập nhật xe
type UpdateVehicleRequest struct {
	Make          string   `json:"make"`
	Model         string   `json:"model"`
	Year          int      `json:"year"`
	DailyRate     *float64 `json:"dailyRate"`
	Specification string   `json:"specification"`
	Availability  *bool    `json:"availability"`
}

// SetAvailabilityRequest là DTO cho request bật / tắt cờ cho thuê
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// SetDailyRateRequest là DTO cho request đổi giá thuê theo ngày
type SetDailyRateRequest struct {
	DailyRate float64 `json:"dailyRate"`
}

// SetSpecificationRequest là DTO cho request đổi mô tả thông số xe
type SetSpecificationRequest struct {
	Specification string `json:"specification" binding:"required"`
}

// VehicleResponse là DTO cho response của xe
type VehicleResponse struct {
	ID            uint    `json:"id"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	DailyRate     float64 `json:"dailyRate"`
	Specification string  `json:"specification"`
	ImageURL      string  `json:"imageUrl"`
	Available     bool    `json:"available"`
	AverageRating float64 `json:"averageRating,omitempty"`
}

// AvailabilityQuery là DTO cho query tìm xe trống theo khoảng ngày
type AvailabilityQuery struct {
	PickUpDateTime  string `form:"pickUpDateTime" binding:"required"`
	DropOffDateTime string `form:"dropOffDateTime" binding:"required"`
}
