package controllers

import (
	"strconv"

	"roadready/constants"
	"roadready/dto"
	"roadready/models"
	"roadready/response"
	"roadready/services"
	"roadready/validator"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	service services.PaymentServiceInterface
}

func NewPaymentController(service services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{service: service}
}

func toPaymentResponse(p *models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:              p.ID,
		ReservationID:   p.ReservationID,
		UserID:          p.UserID,
		VehicleID:       p.VehicleID,
		Method:          p.Method,
		Amount:          p.Amount,
		Status:          p.Status,
		TransactionDate: p.TransactionDate,
	}
}

// CreatePayment ghi nhận thanh toán cho một đơn đặt xe
func (ctl *PaymentController) CreatePayment(c *gin.Context) {
	var request dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payment := &models.Payment{
		ReservationID: request.ReservationID,
		Method:        request.Method,
		Amount:        request.Amount,
		CouponCode:    request.CouponCode,
		Status:        constants.PaymentStatusPending,
	}
	if err := validator.ValidatePayment(payment); err != nil {
		response.FromDomainError(c, err)
		return
	}

	created, err := ctl.service.Create(c.Request.Context(), payment)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toPaymentResponse(created))
}

// GetPaymentDetail trả về chi tiết một thanh toán
func (ctl *PaymentController) GetPaymentDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	payment, err := ctl.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	if c.GetInt("userRole") != constants.RoleAdmin && payment.UserID != c.GetUint("userID") {
		response.Forbidden(c)
		return
	}
	response.Success(c, toPaymentResponse(payment))
}

// GetMyPayments trả về lịch sử thanh toán của user đang đăng nhập
func (ctl *PaymentController) GetMyPayments(c *gin.Context) {
	payments, err := ctl.service.ListByUser(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		paymentResponses = append(paymentResponses, toPaymentResponse(p))
	}
	response.SuccessWithTotal(c, paymentResponses, len(paymentResponses))
}

// UpdatePaymentStatus đổi trạng thái thanh toán (admin)
func (ctl *PaymentController) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payment, err := ctl.service.UpdateStatus(c.Request.Context(), uint(id), request.Status)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, toPaymentResponse(payment))
}
