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
	ErrCodeInvalidLogin    ErrorCode = "INVALID_LOGIN"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"
	ErrCodeExpiredToken    ErrorCode = "EXPIRED_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"

	// Booking errors
	ErrCodeBookingNotFound    ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeInvalidStatus      ErrorCode = "INVALID_STATUS"
	ErrCodeMissingCheckInDate ErrorCode = "MISSING_CHECKIN_DATE"
	ErrCodeEarlyCheckIn       ErrorCode = "EARLY_CHECKIN"
	ErrCodeLateCheckIn        ErrorCode = "LATE_CHECKIN"
	ErrCodeNotBookingOwner    ErrorCode = "NOT_BOOKING_OWNER"

	// Room errors
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomNotAvailable ErrorCode = "ROOM_NOT_AVAILABLE"
	ErrCodeRoomNumberExists ErrorCode = "ROOM_NUMBER_EXISTS"
	ErrCodeRoomInUse        ErrorCode = "ROOM_IN_USE"

	// RoomType errors
	ErrCodeRoomTypeNotFound ErrorCode = "ROOM_TYPE_NOT_FOUND"
	ErrCodeRoomTypeInUse    ErrorCode = "ROOM_TYPE_IN_USE"

	// Payment errors
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
	ErrCodeDBConflict  ErrorCode = "DB_CONFLICT"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
)

// AppError định nghĩa lỗi của ứng dụng, Context mang metadata cho client
type AppError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewAppErrorWithContext tạo AppError kèm metadata
func NewAppErrorWithContext(code ErrorCode, message string, ctx map[string]interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Context: ctx,
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

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingInvalid  = errors.New("invalid booking")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Payment errors
	ErrInvalidAmount = errors.New("invalid amount")

	// Concurrency
	ErrVersionConflict = errors.New("version conflict")
)
