package services

import (
	"fmt"
	"sort"
	"time"

	"hotelhub/config"
	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const revenueCacheTTL = 5 * time.Minute

// RevenueBucket là một khoảng thời gian cùng doanh thu và số booking của nó
type RevenueBucket struct {
	Period   string  `json:"period"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type RevenueServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

// RevenueService tổng hợp doanh thu theo ngày, tuần, tháng, năm.
// Booking Cancelled không tính vào doanh thu.
type RevenueService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

func NewRevenueService(opts RevenueServiceOptions) *RevenueService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RevenueService{db: opts.DB, rdb: opts.Redis, logger: l}
}

// RevenueFilter thu hẹp báo cáo: khoảng ngày nhận phòng, trạng thái booking
// và phòng cụ thể, field nil bỏ qua
type RevenueFilter struct {
	From   *time.Time
	To     *time.Time
	Status *int
	RoomID *uint
}

func (f RevenueFilter) cacheSuffix() string {
	fromStr, toStr := "", ""
	if f.From != nil {
		fromStr = f.From.Format("2006-01-02")
	}
	if f.To != nil {
		toStr = f.To.Format("2006-01-02")
	}
	statusStr, roomStr := "", ""
	if f.Status != nil {
		statusStr = fmt.Sprintf("%d", *f.Status)
	}
	if f.RoomID != nil {
		roomStr = fmt.Sprintf("%d", *f.RoomID)
	}
	return fmt.Sprintf("%s:%s:%s:%s", fromStr, toStr, statusStr, roomStr)
}

// bucketKey sinh khóa nhóm cho một mốc thời gian theo loại báo cáo
func bucketKey(t time.Time, reportType string) string {
	switch reportType {
	case constants.ReportTypeWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case constants.ReportTypeMonthly:
		return t.Format("2006-01")
	case constants.ReportTypeYearly:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// Report tổng hợp doanh thu theo ngày nhận phòng.
// reportType nhận Daily, Weekly, Monthly hoặc Yearly.
func (s *RevenueService) Report(reportType string, filter RevenueFilter) ([]RevenueBucket, *errors.AppError) {
	switch reportType {
	case constants.ReportTypeDaily, constants.ReportTypeWeekly,
		constants.ReportTypeMonthly, constants.ReportTypeYearly:
	default:
		return nil, errors.NewAppErrorWithContext(errors.ErrCodeValidation,
			"Loại báo cáo không hợp lệ", map[string]interface{}{"type": reportType})
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate,
			"Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	cacheKey := fmt.Sprintf("revenue:%s:%s", reportType, filter.cacheSuffix())

	if s.rdb != nil {
		var cached []RevenueBucket
		if err := GetFromRedis(config.Ctx, s.rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	tx := s.db.Where("status <> ?", constants.BookingStatusCancelled)
	if filter.From != nil {
		tx = tx.Where("check_in_date >= ?", truncateToDay(*filter.From))
	}
	if filter.To != nil {
		tx = tx.Where("check_in_date < ?", truncateToDay(*filter.To).AddDate(0, 0, 1))
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	if filter.RoomID != nil {
		tx = tx.Where("room_id = ?", *filter.RoomID)
	}

	var bookings []models.Booking
	if err := tx.Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn doanh thu", err)
	}

	byPeriod := make(map[string]*RevenueBucket)
	for _, booking := range bookings {
		if booking.CheckInDate == nil {
			continue
		}
		key := bucketKey(*booking.CheckInDate, reportType)
		bucket, ok := byPeriod[key]
		if !ok {
			bucket = &RevenueBucket{Period: key}
			byPeriod[key] = bucket
		}
		bucket.Revenue += booking.TotalAmount
		bucket.Bookings++
	}

	buckets := make([]RevenueBucket, 0, len(byPeriod))
	for _, bucket := range byPeriod {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period < buckets[j].Period
	})

	if s.rdb != nil {
		if err := SetToRedis(config.Ctx, s.rdb, cacheKey, buckets, revenueCacheTTL); err != nil {
			s.logger.Error("Không lưu được cache doanh thu: %v", err)
		}
	}

	return buckets, nil
}
