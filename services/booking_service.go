package services

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"hotelhub/config"
	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"
	"hotelhub/services/notification"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	// Cho phép check-in trễ tối đa 2 ngày so với ngày hẹn
	lateCheckInGraceDays = 2

	bookingsCacheKey = "bookings:all"
)

func bookingsUserCacheKey(userID uint) string {
	return fmt.Sprintf("bookings:user:%d", userID)
}

// BookingFilter là bộ lọc danh sách booking, page tính từ 1
type BookingFilter struct {
	UserID       *uint // scope theo chủ booking, nil = tất cả (admin)
	RoomNumber   string
	Username     string
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	Status       *int
	Page         int
	Limit        int
}

type BookingServiceOptions struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notification.Service
	Logger   logger.Logger
}

// BookingService quản lý vòng đời booking: Pending -> Confirmed -> Completed,
// Pending -> Cancelled. Mọi mutation nhiều bảng đều gói trong một transaction.
type BookingService struct {
	db       *gorm.DB
	rdb      *redis.Client
	notifier notification.Service
	logger   logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:       opts.DB,
		rdb:      opts.Redis,
		notifier: opts.Notifier,
		logger:   l,
	}
}

func (s *BookingService) invalidateCache(userID uint) {
	if s.rdb == nil {
		return
	}
	_ = DeleteFromRedis(config.Ctx, s.rdb, bookingsCacheKey)
	_ = DeleteFromRedis(config.Ctx, s.rdb, bookingsUserCacheKey(userID))
	_ = DeleteFromRedis(config.Ctx, s.rdb, roomsCacheKey)
}

func (s *BookingService) broadcast(booking *models.Booking, event string) {
	if s.notifier == nil {
		return
	}
	msg := notification.NewBookingMessageBuilder(booking.ID, booking.RoomID, event).Build()
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Error("Không gửi được thông báo booking %d: %v", booking.ID, err)
	}
}

// Create đặt phòng: ghi booking Pending và chuyển phòng sang Booked trong
// cùng một transaction. checkOut nil = mặc định một đêm (checkIn + 1 ngày).
func (s *BookingService) Create(userID uint, roomID uint, checkIn time.Time, checkOut *time.Time) (models.Booking, *errors.AppError) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return models.Booking{}, errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
	}

	var room models.Room
	if err := s.db.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomNotFound,
				"Không tìm thấy phòng", map[string]interface{}{"roomId": roomID})
		}
		return models.Booking{}, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}

	if room.Status != constants.RoomStatusAvailable {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomNotAvailable,
			"Phòng không khả dụng trong thời điểm này",
			map[string]interface{}{"roomId": room.ID, "status": room.Status})
	}

	if room.RoomType.ID == 0 {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomTypeNotFound,
			"Không tìm thấy loại phòng để tính giá", map[string]interface{}{"roomId": room.ID})
	}

	checkInDay := truncateToDay(checkIn)
	if !room.AvailableOn(checkInDay) {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomNotAvailable,
			"Phòng không mở bán vào ngày này",
			map[string]interface{}{"roomId": room.ID, "checkInDate": checkInDay.Format("2006-01-02")})
	}

	checkOutDay := checkInDay.AddDate(0, 0, 1)
	if checkOut != nil {
		checkOutDay = truncateToDay(*checkOut)
	}
	if !checkOutDay.After(checkInDay) {
		return models.Booking{}, errors.NewAppError(errors.ErrCodeValidation,
			"Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	nights := int(checkOutDay.Sub(checkInDay).Hours() / 24)
	totalAmount := room.RoomType.NightlyPrice * float64(nights)

	booking := models.Booking{
		UserID:       userID,
		RoomID:       room.ID,
		CheckInDate:  &checkInDay,
		CheckOutDate: &checkOutDay,
		Status:       constants.BookingStatusPending,
		TotalAmount:  totalAmount,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Room{}).
			Where("id = ? AND version = ?", room.ID, room.Version).
			Updates(map[string]interface{}{
				"status":  constants.RoomStatusBooked,
				"version": room.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.ErrVersionConflict
		}
		return nil
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrVersionConflict) {
			return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeDBConflict,
				"Phòng vừa bị thay đổi bởi một thao tác khác, vui lòng thử lại",
				map[string]interface{}{"roomId": room.ID})
		}
		return models.Booking{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo booking", err)
	}

	s.invalidateCache(userID)
	s.broadcast(&booking, "created")

	if user.Email != "" {
		go func(email string, b models.Booking) {
			if err := SendBookingEmail(email, b.ID, b.TotalAmount,
				b.CheckInDate.Format("02/01/2006"), b.CheckOutDate.Format("02/01/2006")); err != nil {
				s.logger.Error("Gửi email đặt phòng không thành công: %v", err)
			}
		}(user.Email, booking)
	}

	return booking, nil
}

// CheckIn chuyển booking Pending -> Confirmed. Mỗi precondition trả về một
// mã lỗi riêng để client phân biệt.
func (s *BookingService) CheckIn(bookingID uint, staffID uint) (models.Booking, *errors.AppError) {
	return s.checkInAt(bookingID, staffID, time.Now())
}

func (s *BookingService) checkInAt(bookingID uint, staffID uint, now time.Time) (models.Booking, *errors.AppError) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeBookingNotFound,
			"Không tìm thấy booking", map[string]interface{}{"bookingId": bookingID})
	}

	if booking.Status != constants.BookingStatusPending {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeInvalidStatus,
			"Booking không ở trạng thái cho phép check-in",
			map[string]interface{}{"bookingId": booking.ID, "status": booking.Status})
	}

	if booking.CheckInDate == nil {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeMissingCheckInDate,
			"Booking không có ngày nhận phòng",
			map[string]interface{}{"bookingId": booking.ID})
	}

	today := truncateToDay(now)
	scheduled := truncateToDay(*booking.CheckInDate)

	if today.Before(scheduled) {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeEarlyCheckIn,
			"Chưa đến ngày nhận phòng",
			map[string]interface{}{
				"bookingId":   booking.ID,
				"checkInDate": scheduled.Format("2006-01-02"),
				"today":       today.Format("2006-01-02"),
			})
	}

	if today.After(scheduled.AddDate(0, 0, lateCheckInGraceDays)) {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeLateCheckIn,
			"Đã quá hạn check-in",
			map[string]interface{}{
				"bookingId":   booking.ID,
				"checkInDate": scheduled.Format("2006-01-02"),
				"today":       today.Format("2006-01-02"),
			})
	}

	state := models.GetBookingState(booking.Status)
	if appErr := state.Confirm(&booking); appErr != nil {
		return models.Booking{}, appErr
	}

	if appErr := s.saveBookingGuarded(&booking, map[string]interface{}{
		"status":   booking.Status,
		"staff_id": staffID,
	}); appErr != nil {
		return models.Booking{}, appErr
	}
	booking.StaffID = &staffID

	s.invalidateCache(booking.UserID)
	s.broadcast(&booking, "checked_in")

	return booking, nil
}

// CheckOut chuyển booking Confirmed -> Completed: ghi payment, trả phòng về
// Available và cộng điểm thưởng trong cùng một transaction.
func (s *BookingService) CheckOut(bookingID uint, staffID uint, paymentType int) (models.Booking, *errors.AppError) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeBookingNotFound,
			"Không tìm thấy booking", map[string]interface{}{"bookingId": bookingID})
	}

	state := models.GetBookingState(booking.Status)
	if appErr := state.Complete(&booking); appErr != nil {
		return models.Booking{}, appErr
	}

	now := time.Now()
	payment := models.Payment{
		BookingID:   booking.ID,
		Amount:      booking.TotalAmount,
		PaymentType: paymentType,
		Status:      constants.PaymentStatusPaid,
		PaymentDate: &now,
	}

	points := int(booking.TotalAmount)

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
				Reason:    "Hoàn thành booking",
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
			return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeDBConflict,
				"Booking vừa bị thay đổi bởi một thao tác khác, vui lòng thử lại",
				map[string]interface{}{"bookingId": booking.ID})
		}
		return models.Booking{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể check-out booking", err)
	}
	booking.StaffID = &staffID

	s.invalidateCache(booking.UserID)
	s.broadcast(&booking, "checked_out")

	return booking, nil
}

// Cancel hủy booking Pending của chính chủ và trả phòng về Available
func (s *BookingService) Cancel(bookingID uint, userID uint) (models.Booking, *errors.AppError) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeBookingNotFound,
			"Không tìm thấy booking", map[string]interface{}{"bookingId": bookingID})
	}

	if booking.UserID != userID {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeNotBookingOwner,
			"Booking không thuộc về bạn", map[string]interface{}{"bookingId": booking.ID})
	}

	if booking.Status != constants.BookingStatusPending {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeInvalidStatus,
			"Chỉ hủy được booking đang chờ nhận phòng",
			map[string]interface{}{"bookingId": booking.ID, "status": booking.Status})
	}

	state := models.GetBookingState(booking.Status)
	if appErr := state.Cancel(&booking); appErr != nil {
		return models.Booking{}, appErr
	}

	if appErr := s.cancelTx(&booking); appErr != nil {
		return models.Booking{}, appErr
	}

	s.invalidateCache(booking.UserID)
	s.broadcast(&booking, "cancelled")

	return booking, nil
}

func (s *BookingService) cancelTx(booking *models.Booking) *errors.AppError {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND version = ?", booking.ID, booking.Version).
			Updates(map[string]interface{}{
				"status":  booking.Status,
				"version": booking.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.ErrVersionConflict
		}

		// Trả phòng về Available để giữ bất biến Room/Booking
		return tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Updates(map[string]interface{}{
				"status":  constants.RoomStatusAvailable,
				"version": gorm.Expr("version + 1"),
			}).Error
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrVersionConflict) {
			return errors.NewAppErrorWithContext(errors.ErrCodeDBConflict,
				"Booking vừa bị thay đổi bởi một thao tác khác, vui lòng thử lại",
				map[string]interface{}{"bookingId": booking.ID})
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể hủy booking", err)
	}
	return nil
}

func (s *BookingService) saveBookingGuarded(booking *models.Booking, updates map[string]interface{}) *errors.AppError {
	updates["version"] = booking.Version + 1
	res := s.db.Model(&models.Booking{}).
		Where("id = ? AND version = ?", booking.ID, booking.Version).
		Updates(updates)
	if res.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppErrorWithContext(errors.ErrCodeDBConflict,
			"Booking vừa bị thay đổi bởi một thao tác khác, vui lòng thử lại",
			map[string]interface{}{"bookingId": booking.ID})
	}
	booking.Version++
	return nil
}

// CancelStaleBookings hủy các booking Pending đã quá hạn check-in (quá
// ngày hẹn cộng thời gian ân hạn) và trả phòng về Available. Chạy theo cron,
// trả về số booking đã hủy.
func (s *BookingService) CancelStaleBookings() (int, error) {
	cutoff := truncateToDay(time.Now()).AddDate(0, 0, -lateCheckInGraceDays)

	var stale []models.Booking
	if err := s.db.
		Where("status = ? AND check_in_date < ?", constants.BookingStatusPending, cutoff).
		Find(&stale).Error; err != nil {
		return 0, err
	}

	cancelled := 0
	for i := range stale {
		booking := stale[i]
		state := models.GetBookingState(booking.Status)
		if appErr := state.Cancel(&booking); appErr != nil {
			continue
		}
		if appErr := s.cancelTx(&booking); appErr != nil {
			s.logger.Error("Không hủy được booking quá hạn %d: %v", booking.ID, appErr)
			continue
		}
		s.invalidateCache(booking.UserID)
		s.broadcast(&booking, "expired")
		cancelled++
	}

	return cancelled, nil
}

// GetByID lấy booking kèm user và phòng
func (s *BookingService) GetByID(bookingID uint) (models.Booking, *errors.AppError) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Room.RoomType").Preload("Room.Media").
		First(&booking, bookingID).Error; err != nil {
		return models.Booking{}, errors.NewAppErrorWithContext(errors.ErrCodeBookingNotFound,
			"Không tìm thấy booking", map[string]interface{}{"bookingId": bookingID})
	}
	return booking, nil
}

// List trả về một trang booking theo bộ lọc, sắp theo updated_at mới nhất.
// Khi filter.UserID khác nil kết quả chỉ chứa booking của user đó.
func (s *BookingService) List(filter BookingFilter) ([]models.Booking, int, *errors.AppError) {
	baseTx := s.db.Model(&models.Booking{}).
		Preload("User").
		Preload("Room.RoomType")

	if filter.UserID != nil {
		baseTx = baseTx.Where("bookings.user_id = ?", *filter.UserID)
	}

	var allBookings []models.Booking
	if err := baseTx.Find(&allBookings).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn booking", err)
	}

	filtered := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if !bookingMatches(booking, filter) {
			continue
		}
		filtered = append(filtered, booking)
	}

	total := len(filtered)

	// Xếp theo update mới nhất
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	start := (page - 1) * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	return filtered, total, nil
}

func bookingMatches(booking models.Booking, filter BookingFilter) bool {
	if filter.RoomNumber != "" {
		if !strings.Contains(strings.ToLower(booking.Room.RoomNumber), strings.ToLower(filter.RoomNumber)) {
			return false
		}
	}
	if filter.Username != "" {
		normalizedFilter := normalizeSearch(filter.Username)
		if !strings.Contains(normalizeSearch(booking.User.Username), normalizedFilter) &&
			!strings.Contains(normalizeSearch(booking.User.FullName), normalizedFilter) {
			return false
		}
	}
	if filter.CheckInDate != nil {
		if booking.CheckInDate == nil ||
			booking.CheckInDate.Format("2006-01-02") != filter.CheckInDate.Format("2006-01-02") {
			return false
		}
	}
	if filter.CheckOutDate != nil {
		if booking.CheckOutDate == nil ||
			booking.CheckOutDate.Format("2006-01-02") != filter.CheckOutDate.Format("2006-01-02") {
			return false
		}
	}
	if filter.Status != nil && booking.Status != *filter.Status {
		return false
	}
	return true
}

// normalizeSearch bỏ dấu và khoảng trắng để so khớp gần đúng
func normalizeSearch(s string) string {
	return unidecode.Unidecode(strings.ToLower(strings.ReplaceAll(s, " ", "")))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
