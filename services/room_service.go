package services

import (
	stderrors "errors"
	"sort"
	"strings"
	"time"

	"hotelhub/config"
	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	roomsCacheKey = "rooms:all"

	roomsCacheTTL = 10 * time.Minute
)

// RoomFilter là bộ lọc danh sách phòng, page tính từ 1
type RoomFilter struct {
	RoomNumber  string
	RoomTypeID  *uint
	Status      *int
	AvailableOn *time.Time
	Page        int
	Limit       int
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

// RoomService quản lý phòng vật lý, cache danh sách qua Redis
type RoomService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{db: opts.DB, rdb: opts.Redis, logger: l}
}

func (s *RoomService) invalidateCache() {
	if s.rdb == nil {
		return
	}
	_ = DeleteFromRedis(config.Ctx, s.rdb, roomsCacheKey)
}

// Create thêm phòng mới, số phòng không được trùng và loại phòng phải tồn tại
func (s *RoomService) Create(room *models.Room) *errors.AppError {
	if room.Status == 0 {
		room.Status = constants.RoomStatusAvailable
	}
	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái phòng không hợp lệ", err)
	}

	var count int64
	if err := s.db.Model(&models.Room{}).Where("room_number = ?", room.RoomNumber).Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}
	if count > 0 {
		return errors.NewAppErrorWithContext(errors.ErrCodeRoomNumberExists,
			"Số phòng đã tồn tại", map[string]interface{}{"roomNumber": room.RoomNumber})
	}

	if err := s.db.First(&models.RoomType{}, room.RoomTypeID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppErrorWithContext(errors.ErrCodeRoomTypeNotFound,
				"Loại phòng không tồn tại", map[string]interface{}{"roomTypeId": room.RoomTypeID})
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn loại phòng", err)
	}

	if room.Version == 0 {
		room.Version = 1
	}

	if err := s.db.Create(room).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo phòng", err)
	}

	s.invalidateCache()
	return nil
}

// GetByID lấy phòng kèm loại phòng và media
func (s *RoomService) GetByID(roomID uint) (models.Room, *errors.AppError) {
	var room models.Room
	if err := s.db.Preload("RoomType").Preload("Media").First(&room, roomID).Error; err != nil {
		return models.Room{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomNotFound,
			"Không tìm thấy phòng", map[string]interface{}{"roomId": roomID})
	}
	return room, nil
}

// Update cập nhật phòng với version guard, đổi số phòng vẫn phải unique
func (s *RoomService) Update(roomID uint, updates map[string]interface{}) (models.Room, *errors.AppError) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		return models.Room{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomNotFound,
			"Không tìm thấy phòng", map[string]interface{}{"roomId": roomID})
	}

	if newNumber, ok := updates["room_number"].(string); ok && newNumber != room.RoomNumber {
		var count int64
		if err := s.db.Model(&models.Room{}).
			Where("room_number = ? AND id <> ?", newNumber, roomID).Count(&count).Error; err != nil {
			return models.Room{}, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
		}
		if count > 0 {
			return models.Room{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomNumberExists,
				"Số phòng đã tồn tại", map[string]interface{}{"roomNumber": newNumber})
		}
	}

	if newStatus, ok := updates["status"].(int); ok {
		if newStatus != constants.RoomStatusAvailable &&
			newStatus != constants.RoomStatusBooked &&
			newStatus != constants.RoomStatusMaintenance {
			return models.Room{}, errors.NewAppError(errors.ErrCodeValidation, "Trạng thái phòng không hợp lệ", nil)
		}
	}

	// Khung mở bán sau cập nhật vẫn phải hợp lệ
	startDate, endDate := room.StartDate, room.EndDate
	if newStart, ok := updates["start_date"].(time.Time); ok {
		startDate = &newStart
	}
	if newEnd, ok := updates["end_date"].(time.Time); ok {
		endDate = &newEnd
	}
	if startDate != nil && endDate != nil && !endDate.After(*startDate) {
		return models.Room{}, errors.NewAppError(errors.ErrCodeValidation,
			"Ngày kết thúc mở bán phải sau ngày bắt đầu", nil)
	}

	updates["version"] = room.Version + 1
	res := s.db.Model(&models.Room{}).
		Where("id = ? AND version = ?", room.ID, room.Version).
		Updates(updates)
	if res.Error != nil {
		return models.Room{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật phòng", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Room{}, errors.NewAppErrorWithContext(errors.ErrCodeDBConflict,
			"Phòng vừa bị thay đổi bởi một thao tác khác, vui lòng thử lại",
			map[string]interface{}{"roomId": room.ID})
	}

	s.invalidateCache()
	return s.GetByID(roomID)
}

// Delete xóa phòng, từ chối nếu còn booking tham chiếu tới phòng
func (s *RoomService) Delete(roomID uint) *errors.AppError {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		return errors.NewAppErrorWithContext(errors.ErrCodeRoomNotFound,
			"Không tìm thấy phòng", map[string]interface{}{"roomId": roomID})
	}

	// Booking đã kết thúc vẫn giữ khóa ngoại tới phòng, xóa sẽ vi phạm ràng buộc
	var referenced int64
	if err := s.db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Count(&referenced).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn booking", err)
	}
	if referenced > 0 {
		return errors.NewAppErrorWithContext(errors.ErrCodeRoomInUse,
			"Phòng đã có booking tham chiếu, không thể xóa",
			map[string]interface{}{"roomId": roomID, "bookings": referenced})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.RoomMedia{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, roomID).Error
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa phòng", err)
	}

	s.invalidateCache()
	return nil
}

// AddMedia gắn một media (ảnh/video đã upload) vào phòng
func (s *RoomService) AddMedia(roomID uint, url string, mediaType int) (models.RoomMedia, *errors.AppError) {
	if err := s.db.First(&models.Room{}, roomID).Error; err != nil {
		return models.RoomMedia{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomNotFound,
			"Không tìm thấy phòng", map[string]interface{}{"roomId": roomID})
	}

	media := models.RoomMedia{RoomID: roomID, URL: url, MediaType: mediaType}
	if err := s.db.Create(&media).Error; err != nil {
		return models.RoomMedia{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể lưu media", err)
	}

	s.invalidateCache()
	return media, nil
}

// RemoveMedia gỡ một media khỏi phòng của nó
func (s *RoomService) RemoveMedia(mediaID uint) *errors.AppError {
	var media models.RoomMedia
	if err := s.db.First(&media, mediaID).Error; err != nil {
		return errors.NewAppErrorWithContext(errors.ErrCodeDBNotFound,
			"Không tìm thấy media", map[string]interface{}{"mediaId": mediaID})
	}

	if err := s.db.Delete(&models.RoomMedia{}, mediaID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa media", err)
	}

	s.invalidateCache()
	return nil
}

// List trả về một trang phòng theo bộ lọc. Danh sách gốc được cache toàn bộ
// trong Redis, filter và phân trang thực hiện trên bản cache.
// Không truyền status thì mặc định chỉ trả phòng Available.
func (s *RoomService) List(filter RoomFilter) ([]models.Room, int, *errors.AppError) {
	if filter.Status == nil {
		status := constants.RoomStatusAvailable
		filter.Status = &status
	}

	var allRooms []models.Room

	cached := false
	if s.rdb != nil {
		if err := GetFromRedis(config.Ctx, s.rdb, roomsCacheKey, &allRooms); err == nil && len(allRooms) > 0 {
			cached = true
		}
	}

	if !cached {
		if err := s.db.Preload("RoomType").Preload("Media").Find(&allRooms).Error; err != nil {
			return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
		}
		if s.rdb != nil {
			if err := SetToRedis(config.Ctx, s.rdb, roomsCacheKey, allRooms, roomsCacheTTL); err != nil {
				s.logger.Error("Không lưu được cache phòng: %v", err)
			}
		}
	}

	filtered := make([]models.Room, 0)
	for _, room := range allRooms {
		if !roomMatches(room, filter) {
			continue
		}
		filtered = append(filtered, room)
	}

	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].RoomNumber < filtered[j].RoomNumber
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
		filtered = []models.Room{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	return filtered, total, nil
}

func roomMatches(room models.Room, filter RoomFilter) bool {
	if filter.RoomNumber != "" &&
		!strings.Contains(strings.ToLower(room.RoomNumber), strings.ToLower(filter.RoomNumber)) {
		return false
	}
	if filter.RoomTypeID != nil && room.RoomTypeID != *filter.RoomTypeID {
		return false
	}
	if filter.Status != nil && room.Status != *filter.Status {
		return false
	}
	if filter.AvailableOn != nil {
		if room.Status != constants.RoomStatusAvailable || !room.AvailableOn(*filter.AvailableOn) {
			return false
		}
	}
	return true
}
