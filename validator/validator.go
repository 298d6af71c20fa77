package validator

import (
	"regexp"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
)

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên đăng nhập không được để trống", nil)
	}

	if len(user.Username) < 3 {
		return errors.NewAppError(errors.ErrCodeValidation, "Tên đăng nhập phải có ít nhất 3 ký tự", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role != constants.RoleCustomer && user.Role != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số phòng không được để trống", nil)
	}

	if len(room.RoomNumber) > 20 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng không được quá 20 ký tự", nil)
	}

	if room.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}

	if room.StartDate != nil && room.EndDate != nil && !room.EndDate.After(*room.StartDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc mở bán phải sau ngày bắt đầu", nil)
	}

	return nil
}

// ValidateRoomType validate loại phòng
func ValidateRoomType(roomType *models.RoomType) error {
	if roomType.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}

	if roomType.NightlyPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá theo đêm không được âm", nil)
	}

	return nil
}

// ValidateBookingDates parse và kiểm tra cặp ngày nhận / trả phòng dạng
// dd/mm/yyyy. checkOutStr rỗng nghĩa là một đêm.
func ValidateBookingDates(checkInStr string, checkOutStr string) (time.Time, *time.Time, error) {
	if checkInStr == "" {
		return time.Time{}, nil, errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận phòng không được để trống", nil)
	}

	checkIn, err := time.Parse("02/01/2006", checkInStr)
	if err != nil {
		return time.Time{}, nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày nhận phòng không hợp lệ", err)
	}

	if checkOutStr == "" {
		return checkIn, nil, nil
	}

	checkOut, err := time.Parse("02/01/2006", checkOutStr)
	if err != nil {
		return time.Time{}, nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return checkIn, &checkOut, nil
}

// ValidatePaymentType kiểm tra loại thanh toán hợp lệ
func ValidatePaymentType(paymentType int) error {
	switch paymentType {
	case constants.PaymentTypeCash, constants.PaymentTypeBankTransfer, constants.PaymentTypeMomo:
		return nil
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Loại thanh toán không hợp lệ", nil)
	}
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
