package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Vehicle errors
	ErrCodeInvalidRate ErrorCode = "INVALID_DAILY_RATE"
	ErrCodeInvalidYear ErrorCode = "INVALID_YEAR"

	// Reservation errors
	ErrCodeInvalidStatus     ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidTransition ErrorCode = "INVALID_STATUS_TRANSITION"
	ErrCodeInvalidPrice      ErrorCode = "INVALID_PRICE"
	ErrCodeInvalidDates      ErrorCode = "INVALID_DATES"

	// Discount errors
	ErrCodeInvalidPercentage ErrorCode = "INVALID_PERCENTAGE"
	ErrCodeInvalidEndDate    ErrorCode = "INVALID_END_DATE"

	// Payment / review errors
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidRating ErrorCode = "INVALID_RATING"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi validation của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Các lỗi nghiệp vụ cố định. Controller map từng loại sang HTTP status:
// not found -> 404, conflict -> 409, validation -> 400, còn lại -> 500.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrEmptyList     = errors.New("list is empty")

	ErrInvalidInterval       = errors.New("invalid reservation interval")
	ErrReservationConflict   = errors.New("reservation dates conflict with an existing reservation")
	ErrVehicleNotAvailable   = errors.New("vehicle is not available")
	ErrNoPendingReservations = errors.New("no pending reservations")

	ErrDiscountNotAssigned = errors.New("discount is not assigned to the vehicle")

	ErrStorage = errors.New("storage error")
)

// Wrap gắn thêm ngữ cảnh cho lỗi mà vẫn giữ nguyên loại lỗi gốc
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
