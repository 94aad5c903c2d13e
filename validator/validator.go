package validator

import (
	"regexp"
	"time"

	"roadready/errors"
	"roadready/models"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username không được để trống", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 1 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateVehicle validate thông tin xe
func ValidateVehicle(vehicle *models.Vehicle) error {
	if vehicle.Make == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hãng xe không được để trống", nil)
	}

	if vehicle.Model == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Dòng xe không được để trống", nil)
	}

	if vehicle.Year != 0 && (vehicle.Year < 1950 || vehicle.Year > time.Now().Year()+1) {
		return errors.NewAppError(errors.ErrCodeInvalidYear, "Năm sản xuất không hợp lệ", nil)
	}

	if vehicle.DailyRate < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidRate, "Giá thuê theo ngày không được âm", nil)
	}

	return nil
}

// ValidateDiscount validate thông tin mã giảm giá
func ValidateDiscount(discount *models.Discount) error {
	if discount.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên mã giảm giá không được để trống", nil)
	}

	if discount.CouponCode == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Coupon code không được để trống", nil)
	}

	if discount.Percentage < 0 || discount.Percentage > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidPercentage, "Phần trăm giảm giá phải nằm trong khoảng 0 đến 100", nil)
	}

	if !discount.EndDate.IsZero() && !discount.EndDate.After(discount.StartDate) {
		return errors.NewAppError(errors.ErrCodeInvalidEndDate, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	return nil
}

// ValidateReservationDates validate khoảng ngày đặt xe
func ValidateReservationDates(pickUp, dropOff time.Time) error {
	if pickUp.IsZero() || dropOff.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận và trả xe không được để trống", nil)
	}

	if !pickUp.Before(dropOff) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả xe phải sau ngày nhận xe", nil)
	}

	return nil
}

// ValidatePayment validate thông tin thanh toán
func ValidatePayment(payment *models.Payment) error {
	if payment.ReservationID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ReservationID không được để trống", nil)
	}

	if payment.Method == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phương thức thanh toán không được để trống", nil)
	}

	if payment.Amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}

	return nil
}

// ValidateReview validate đánh giá
func ValidateReview(review *models.Review) error {
	if review.VehicleID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "VehicleID không được để trống", nil)
	}

	if review.Rating < 1 || review.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidRating, "Điểm đánh giá phải từ 1 đến 5", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
