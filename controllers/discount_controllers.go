package controllers

import (
	"strconv"
	"time"

	"roadready/dto"
	"roadready/models"
	"roadready/response"
	"roadready/services"
	"roadready/validator"

	"github.com/gin-gonic/gin"
)

type DiscountController struct {
	service services.DiscountServiceInterface
}

func NewDiscountController(service services.DiscountServiceInterface) *DiscountController {
	return &DiscountController{service: service}
}

func toDiscountResponse(d *models.Discount) dto.DiscountResponse {
	return dto.DiscountResponse{
		ID:         d.ID,
		Name:       d.Name,
		CouponCode: d.CouponCode,
		Percentage: d.Percentage,
		StartDate:  d.StartDate.Format(dateOnlyLayout),
		EndDate:    d.EndDate.Format(dateOnlyLayout),
		Active:     d.IsActiveAt(time.Now()),
	}
}

// GetDiscounts trả về toàn bộ mã giảm giá. Query active=true chỉ trả về
// mã đang hiệu lực.
func (ctl *DiscountController) GetDiscounts(c *gin.Context) {
	var discounts []*models.Discount
	var err error
	if c.Query("active") == "true" {
		discounts, err = ctl.service.ActiveDiscounts(c.Request.Context(), time.Now())
	} else {
		discounts, err = ctl.service.GetAll(c.Request.Context())
	}
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	discountResponses := make([]dto.DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		discountResponses = append(discountResponses, toDiscountResponse(d))
	}
	response.SuccessWithTotal(c, discountResponses, len(discountResponses))
}

// GetDiscountDetail trả về chi tiết một mã giảm giá
func (ctl *DiscountController) GetDiscountDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	discount, err := ctl.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toDiscountResponse(discount))
}

// CreateDiscount tạo mã giảm giá mới
func (ctl *DiscountController) CreateDiscount(c *gin.Context) {
	var request dto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	startDate, err := parseDateTime(request.StartDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày bắt đầu không hợp lệ")
		return
	}
	endDate, err := parseDateTime(request.EndDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
		return
	}

	discount := &models.Discount{
		Name:       request.Name,
		CouponCode: request.CouponCode,
		Percentage: request.Percentage,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if err := validator.ValidateDiscount(discount); err != nil {
		response.FromDomainError(c, err)
		return
	}

	created, err := ctl.service.Create(c.Request.Context(), discount)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toDiscountResponse(created))
}

// UpdateDiscountPercentage đổi phần trăm giảm của mã
func (ctl *DiscountController) UpdateDiscountPercentage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdatePercentageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	discount, err := ctl.service.UpdatePercentage(c.Request.Context(), uint(id), request.Percentage)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toDiscountResponse(discount))
}

// UpdateDiscountEndDate gia hạn mã giảm giá
func (ctl *DiscountController) UpdateDiscountEndDate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdateEndDateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	endDate, err := parseDateTime(request.EndDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
		return
	}

	discount, err := ctl.service.UpdateEndDate(c.Request.Context(), uint(id), endDate)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toDiscountResponse(discount))
}

// DeactivateDiscount tắt mã giảm giá ngay lập tức
func (ctl *DiscountController) DeactivateDiscount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	discount, err := ctl.service.Deactivate(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toDiscountResponse(discount))
}

// AssignDiscountToVehicle gắn mã giảm giá vào xe
func (ctl *DiscountController) AssignDiscountToVehicle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.AssignDiscountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := ctl.service.AssignToVehicle(c.Request.Context(), uint(id), request.VehicleID); err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveDiscountFromVehicle gỡ mã giảm giá khỏi xe
func (ctl *DiscountController) RemoveDiscountFromVehicle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.AssignDiscountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := ctl.service.RemoveFromVehicle(c.Request.Context(), uint(id), request.VehicleID); err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetVehicleDiscounts trả về các mã giảm giá đang gắn với một xe
func (ctl *DiscountController) GetVehicleDiscounts(c *gin.Context) {
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	discounts, err := ctl.service.DiscountsOfVehicle(c.Request.Context(), uint(vehicleID))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	discountResponses := make([]dto.DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		discountResponses = append(discountResponses, toDiscountResponse(d))
	}
	response.SuccessWithTotal(c, discountResponses, len(discountResponses))
}

// GetDiscountedVehicles trả về các xe đang có mã giảm giá hiệu lực
func (ctl *DiscountController) GetDiscountedVehicles(c *gin.Context) {
	vehicles, err := ctl.service.ListDiscountedVehicles(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.SuccessWithTotal(c, vehicles, len(vehicles))
}

// GetReservationDiscounts trả về các mã đã áp vào một đơn đặt xe
func (ctl *DiscountController) GetReservationDiscounts(c *gin.Context) {
	reservationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	discounts, err := ctl.service.AppliedDiscounts(c.Request.Context(), uint(reservationID))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	discountResponses := make([]dto.DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		discountResponses = append(discountResponses, toDiscountResponse(d))
	}
	response.SuccessWithTotal(c, discountResponses, len(discountResponses))
}
