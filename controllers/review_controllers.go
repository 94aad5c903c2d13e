package controllers

import (
	"strconv"

	"roadready/dto"
	"roadready/models"
	"roadready/response"
	"roadready/services"
	"roadready/validator"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	service services.ReviewServiceInterface
}

func NewReviewController(service services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{service: service}
}

func toReviewResponse(r *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         r.ID,
		VehicleID:  r.VehicleID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		ReviewDate: r.ReviewDate,
	}
}

// CreateReview user đánh giá một xe
func (ctl *ReviewController) CreateReview(c *gin.Context) {
	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	review := &models.Review{
		VehicleID: request.VehicleID,
		UserID:    c.GetUint("userID"),
		Rating:    request.Rating,
		Comment:   request.Comment,
	}
	if err := validator.ValidateReview(review); err != nil {
		response.FromDomainError(c, err)
		return
	}

	created, err := ctl.service.Create(c.Request.Context(), review)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toReviewResponse(created))
}

// GetVehicleReviews trả về các đánh giá của một xe
func (ctl *ReviewController) GetVehicleReviews(c *gin.Context) {
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	reviews, err := ctl.service.ListByVehicle(c.Request.Context(), uint(vehicleID))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		reviewResponses = append(reviewResponses, toReviewResponse(r))
	}
	response.SuccessWithTotal(c, reviewResponses, len(reviewResponses))
}

// DeleteReview xóa một đánh giá (admin)
func (ctl *ReviewController) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := ctl.service.Delete(c.Request.Context(), uint(id)); err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, nil)
}
