package services

import (
	stderrors "errors"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"
	"hotelhub/utils"

	"gorm.io/gorm"
)

// PaymentFilter là bộ lọc sổ thanh toán, page tính từ 1
type PaymentFilter struct {
	BookingID   *uint
	Status      *int
	PaymentType *int
	Page        int
	Limit       int
}

type PaymentServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// PaymentService đọc sổ thanh toán và xử lý hoàn tiền. Sổ là append-only:
// hoàn tiền ghi thêm một dòng âm thay vì sửa dòng cũ.
type PaymentService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PaymentService{db: opts.DB, logger: l}
}

// GetByID lấy một dòng thanh toán kèm booking
func (s *PaymentService) GetByID(paymentID uint) (models.Payment, *errors.AppError) {
	var payment models.Payment
	if err := s.db.Preload("Booking").First(&payment, paymentID).Error; err != nil {
		return models.Payment{}, errors.NewAppErrorWithContext(errors.ErrCodeDBNotFound,
			"Không tìm thấy thanh toán", map[string]interface{}{"paymentId": paymentID})
	}
	return payment, nil
}

// ListByBooking trả về mọi dòng thanh toán của một booking, cũ trước mới sau
func (s *PaymentService) ListByBooking(bookingID uint) ([]models.Payment, *errors.AppError) {
	var payments []models.Payment
	if err := s.db.Where("booking_id = ?", bookingID).
		Order("created_at").Find(&payments).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}
	return payments, nil
}

// List trả về một trang của sổ thanh toán, mới nhất trước
func (s *PaymentService) List(filter PaymentFilter) ([]models.Payment, int64, *errors.AppError) {
	tx := s.db.Model(&models.Payment{})
	if filter.BookingID != nil {
		tx = tx.Where("booking_id = ?", *filter.BookingID)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	if filter.PaymentType != nil {
		tx = tx.Where("payment_type = ?", *filter.PaymentType)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	var payments []models.Payment
	if err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}

	return payments, total, nil
}

// Process thanh toán một booking Confirmed với số tiền tường minh: ghi
// payment và chuyển booking sang Completed trong một transaction, cộng điểm
// thưởng theo số tiền đã trả
func (s *PaymentService) Process(bookingID uint, staffID uint, amount float64, paymentType int) (models.Payment, *errors.AppError) {
	if amount <= 0 {
		return models.Payment{}, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}

	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return models.Payment{}, errors.NewAppErrorWithContext(errors.ErrCodeBookingNotFound,
			"Không tìm thấy booking", map[string]interface{}{"bookingId": bookingID})
	}

	state := models.GetBookingState(booking.Status)
	if appErr := state.Complete(&booking); appErr != nil {
		return models.Payment{}, appErr
	}

	now := time.Now()
	payment := models.Payment{
		BookingID:   bookingID,
		Amount:      amount,
		PaymentType: paymentType,
		Status:      constants.PaymentStatusPaid,
		PaymentDate: &now,
	}

	points := int(amount)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND version = ?", booking.ID, booking.Version).
			Updates(map[string]interface{}{
				"status":   booking.Status,
				"staff_id": staffID,
				"version":  booking.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.ErrVersionConflict
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Updates(map[string]interface{}{
				"status":  constants.RoomStatusAvailable,
				"version": gorm.Expr("version + 1"),
			}).Error; err != nil {
			return err
		}

		if points > 0 {
			pt := models.PointTransaction{
				UserID:    booking.UserID,
				BookingID: &booking.ID,
				Points:    points,
				Reason:    "Thanh toán booking",
			}
			if err := tx.Create(&pt).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).
				Where("id = ?", booking.UserID).
				Update("points", gorm.Expr("points + ?", points)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrVersionConflict) {
			return models.Payment{}, errors.NewAppErrorWithContext(errors.ErrCodeDBConflict,
				"Booking vừa bị thay đổi bởi một thao tác khác, vui lòng thử lại",
				map[string]interface{}{"bookingId": booking.ID})
		}
		return models.Payment{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể xử lý thanh toán", err)
	}

	utils.LogInfo("Thanh toán booking %d: %s số tiền %.2f (staff %d)",
		bookingID, payment.PaymentCode, payment.Amount, staffID)

	return payment, nil
}

// Record ghi một dòng thanh toán điều chỉnh, không đụng vào trạng thái
// booking. Thao tác sửa sổ nên mọi lần gọi đều vào audit log.
func (s *PaymentService) Record(bookingID uint, staffID uint, amount float64, paymentType int, status int) (models.Payment, *errors.AppError) {
	if amount == 0 {
		return models.Payment{}, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được bằng 0", nil)
	}

	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return models.Payment{}, errors.NewAppErrorWithContext(errors.ErrCodeBookingNotFound,
			"Không tìm thấy booking", map[string]interface{}{"bookingId": bookingID})
	}

	now := time.Now()
	payment := models.Payment{
		BookingID:   bookingID,
		Amount:      amount,
		PaymentType: paymentType,
		Status:      status,
		PaymentDate: &now,
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return models.Payment{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể ghi thanh toán", err)
	}

	utils.LogInfo("Ghi điều chỉnh thanh toán booking %d: %s số tiền %.2f trạng thái %d (staff %d)",
		bookingID, payment.PaymentCode, payment.Amount, payment.Status, staffID)

	return payment, nil
}

// Refund hoàn tiền một booking đã Completed: ghi dòng thanh toán âm, chuyển
// booking sang Cancelled và thu hồi điểm thưởng đã cộng, tất cả trong một
// transaction. Đây là đường duy nhất cho phép Completed -> Cancelled.
// amount = 0 hoàn đúng số tiền đã trả lần gần nhất.
func (s *PaymentService) Refund(bookingID uint, staffID uint, amount float64) (models.Payment, *errors.AppError) {
	if amount < 0 {
		return models.Payment{}, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return models.Payment{}, errors.NewAppErrorWithContext(errors.ErrCodeBookingNotFound,
			"Không tìm thấy booking", map[string]interface{}{"bookingId": bookingID})
	}

	state := models.GetBookingState(booking.Status)
	if appErr := state.Cancel(&booking); appErr != nil {
		return models.Payment{}, appErr
	}

	var original models.Payment
	if err := s.db.Where("booking_id = ? AND status = ?", bookingID, constants.PaymentStatusPaid).
		Order("created_at DESC").First(&original).Error; err != nil {
		return models.Payment{}, errors.NewAppErrorWithContext(errors.ErrCodeDBNotFound,
			"Booking chưa có thanh toán để hoàn", map[string]interface{}{"bookingId": bookingID})
	}

	if amount == 0 {
		amount = original.Amount
	}

	now := time.Now()
	refund := models.Payment{
		BookingID:   bookingID,
		Amount:      -amount,
		PaymentType: original.PaymentType,
		Status:      constants.PaymentStatusRefunded,
		PaymentDate: &now,
	}

	points := int(amount)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND version = ?", booking.ID, booking.Version).
			Updates(map[string]interface{}{
				"status":   booking.Status,
				"staff_id": staffID,
				"version":  booking.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.ErrVersionConflict
		}

		if err := tx.Create(&refund).Error; err != nil {
			return err
		}

		// Thu hồi điểm đã cộng lúc check-out
		if points > 0 {
			pt := models.PointTransaction{
				UserID:    booking.UserID,
				BookingID: &booking.ID,
				Points:    -points,
				Reason:    "Hoàn tiền booking",
			}
			if err := tx.Create(&pt).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).
				Where("id = ?", booking.UserID).
				Update("points", gorm.Expr("points - ?", points)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrVersionConflict) {
			return models.Payment{}, errors.NewAppErrorWithContext(errors.ErrCodeDBConflict,
				"Booking vừa bị thay đổi bởi một thao tác khác, vui lòng thử lại",
				map[string]interface{}{"bookingId": booking.ID})
		}
		return models.Payment{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể hoàn tiền", err)
	}

	utils.LogInfo("Hoàn tiền booking %d: %s số tiền %.2f (staff %d)",
		bookingID, refund.PaymentCode, refund.Amount, staffID)

	return refund, nil
}
