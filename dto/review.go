package dto

import "time"

// CreateReviewRequest là DTO cho request đánh giá xe
type CreateReviewRequest struct {
	VehicleID uint   `json:"vehicleId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// ReviewResponse là DTO cho response của đánh giá
type ReviewResponse struct {
	ID         uint      `json:"id"`
	VehicleID  uint      `json:"vehicleId"`
	UserID     uint      `json:"userId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate"`
}
