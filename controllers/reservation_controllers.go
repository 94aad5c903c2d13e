package controllers

import (
	"strconv"

	"roadready/constants"
	"roadready/dto"
	"roadready/models"
	"roadready/response"
	"roadready/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	service   services.ReservationServiceInterface
	discounts services.DiscountServiceInterface
}

func NewReservationController(service services.ReservationServiceInterface, discounts services.DiscountServiceInterface) *ReservationController {
	return &ReservationController{service: service, discounts: discounts}
}

func toReservationResponse(r *models.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		VehicleID:       r.VehicleID,
		PickUpDateTime:  r.PickUpDateTime.Format(dto.DateTimeLayout),
		DropOffDateTime: r.DropOffDateTime.Format(dto.DateTimeLayout),
		Status:          string(r.Status),
		DisplayStatus:   services.DeriveDisplayStatus(r),
		TotalPrice:      r.TotalPrice,
	}
}

// CreateReservation tạo đơn đặt xe mới cho user đang đăng nhập
func (ctl *ReservationController) CreateReservation(c *gin.Context) {
	var request dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	pickUp, err := parseDateTime(request.PickUpDateTime)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày nhận xe không hợp lệ")
		return
	}
	dropOff, err := parseDateTime(request.DropOffDateTime)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày trả xe không hợp lệ")
		return
	}

	reservation, err := ctl.service.Create(c.Request.Context(), services.CreateReservationInput{
		UserID:          c.GetUint("userID"),
		VehicleID:       request.VehicleID,
		PickUpDateTime:  pickUp,
		DropOffDateTime: dropOff,
		CouponCode:      request.CouponCode,
	})
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	if request.CouponCode != "" {
		if applied, err := ctl.discounts.ApplyToReservation(c.Request.Context(), reservation.ID, request.CouponCode); err == nil {
			reservation = applied
		}
	}

	response.Success(c, toReservationResponse(reservation))
}

// GetReservations trả về toàn bộ đơn đặt xe cho admin
func (ctl *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := ctl.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	ctl.respondList(c, reservations)
}

// GetReservationDetail trả về chi tiết một đơn. User thường chỉ xem được
// đơn của chính mình.
func (ctl *ReservationController) GetReservationDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	reservation, err := ctl.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	if c.GetInt("userRole") != constants.RoleAdmin && reservation.UserID != c.GetUint("userID") {
		response.Forbidden(c)
		return
	}
	response.Success(c, toReservationResponse(reservation))
}

// GetMyReservations trả về lịch sử đặt xe của user đang đăng nhập
func (ctl *ReservationController) GetMyReservations(c *gin.Context) {
	reservations, err := ctl.service.ListByUser(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	ctl.respondList(c, reservations)
}

// GetPendingReservations trả về các đơn chờ duyệt cho admin
func (ctl *ReservationController) GetPendingReservations(c *gin.Context) {
	reservations, err := ctl.service.ListPending(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	ctl.respondList(c, reservations)
}

// ChangeReservationStatus chuyển trạng thái đơn (admin duyệt / xác nhận)
func (ctl *ReservationController) ChangeReservationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	status, err := models.ParseReservationStatus(request.Status)
	if err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	reservation, err := ctl.service.UpdateStatus(c.Request.Context(), uint(id), status)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toReservationResponse(reservation))
}

// UpdateReservationPrice cho admin chỉnh tổng giá của đơn
func (ctl *ReservationController) UpdateReservationPrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdateReservationPriceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	reservation, err := ctl.service.UpdatePrice(c.Request.Context(), uint(id), request.TotalPrice)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toReservationResponse(reservation))
}

// CancelReservation hủy đơn. User thường chỉ hủy được đơn của chính mình.
func (ctl *ReservationController) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	reservation, err := ctl.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	if c.GetInt("userRole") != constants.RoleAdmin && reservation.UserID != c.GetUint("userID") {
		response.Forbidden(c)
		return
	}

	cancelled, err := ctl.service.Cancel(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toReservationResponse(cancelled))
}

// ApplyDiscount áp coupon vào một đơn đã có
func (ctl *ReservationController) ApplyDiscount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	reservation, err := ctl.discounts.ApplyToReservation(c.Request.Context(), uint(id), request.CouponCode)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toReservationResponse(reservation))
}

func (ctl *ReservationController) respondList(c *gin.Context, reservations []*models.Reservation) {
	reservationResponses := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		reservationResponses = append(reservationResponses, toReservationResponse(r))
	}
	response.SuccessWithTotal(c, reservationResponses, len(reservationResponses))
}
