package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// StaleBookingCanceler hủy các booking Pending đã quá hạn check-in
type StaleBookingCanceler interface {
	CancelStaleBookings() (int, error)
}

// ResetTokenCleaner xóa các mã đặt lại mật khẩu đã hết hạn
type ResetTokenCleaner interface {
	CleanupExpiredResetTokens() (int64, error)
}

var (
	bookingCanceler StaleBookingCanceler
	tokenCleaner    ResetTokenCleaner
)

// SetStaleBookingCanceler thiết lập implementation cho StaleBookingCanceler
func SetStaleBookingCanceler(canceler StaleBookingCanceler) {
	bookingCanceler = canceler
}

// SetResetTokenCleaner thiết lập implementation cho ResetTokenCleaner
func SetResetTokenCleaner(cleaner ResetTokenCleaner) {
	tokenCleaner = cleaner
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Chạy lúc 0h mỗi ngày: hủy booking quá hạn check-in
	_, err := c.AddFunc("0 0 * * *", func() {
		if bookingCanceler == nil {
			log.Printf("Lỗi: StaleBookingCanceler chưa được thiết lập")
			return
		}
		cancelled, err := bookingCanceler.CancelStaleBookings()
		if err != nil {
			log.Printf("Lỗi khi hủy booking quá hạn: %v", err)
			return
		}
		if cancelled > 0 {
			log.Printf("Đã hủy %d booking quá hạn check-in", cancelled)
		}
	})
	if err != nil {
		return err
	}

	// Chạy mỗi giờ: dọn mã đặt lại mật khẩu hết hạn
	_, err = c.AddFunc("0 * * * *", func() {
		if tokenCleaner == nil {
			return
		}
		cleaned, err := tokenCleaner.CleanupExpiredResetTokens()
		if err != nil {
			log.Printf("Lỗi khi dọn mã đặt lại mật khẩu: %v", err)
			return
		}
		if cleaned > 0 {
			log.Printf("Đã dọn %d mã đặt lại mật khẩu hết hạn", cleaned)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
