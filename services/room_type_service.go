package services

import (
	"time"

	"hotelhub/config"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	roomTypesCacheKey = "roomtypes:all"

	roomTypesCacheTTL = 30 * time.Minute
)

type RoomTypeServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

// RoomTypeService quản lý loại phòng và giá theo đêm
type RoomTypeService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

func NewRoomTypeService(opts RoomTypeServiceOptions) *RoomTypeService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomTypeService{db: opts.DB, rdb: opts.Redis, logger: l}
}

func (s *RoomTypeService) invalidateCache() {
	if s.rdb == nil {
		return
	}
	_ = DeleteFromRedis(config.Ctx, s.rdb, roomTypesCacheKey)
	_ = DeleteFromRedis(config.Ctx, s.rdb, roomsCacheKey)
}

// Create thêm loại phòng mới, giá theo đêm không được âm
func (s *RoomTypeService) Create(roomType *models.RoomType) *errors.AppError {
	if roomType.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}
	if roomType.NightlyPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá theo đêm không được âm", nil)
	}

	if err := s.db.Create(roomType).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo loại phòng", err)
	}

	s.invalidateCache()
	return nil
}

func (s *RoomTypeService) GetByID(roomTypeID uint) (models.RoomType, *errors.AppError) {
	var roomType models.RoomType
	if err := s.db.First(&roomType, roomTypeID).Error; err != nil {
		return models.RoomType{}, errors.NewAppErrorWithContext(errors.ErrCodeRoomTypeNotFound,
			"Không tìm thấy loại phòng", map[string]interface{}{"roomTypeId": roomTypeID})
	}
	return roomType, nil
}

// Update cập nhật loại phòng. Giá mới chỉ áp cho booking tạo sau đó,
// booking cũ giữ nguyên TotalAmount đã chốt.
func (s *RoomTypeService) Update(roomTypeID uint, updates map[string]interface{}) (models.RoomType, *errors.AppError) {
	roomType, appErr := s.GetByID(roomTypeID)
	if appErr != nil {
		return models.RoomType{}, appErr
	}

	if price, ok := updates["nightly_price"].(float64); ok && price < 0 {
		return models.RoomType{}, errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá theo đêm không được âm", nil)
	}

	if err := s.db.Model(&roomType).Updates(updates).Error; err != nil {
		return models.RoomType{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật loại phòng", err)
	}

	s.invalidateCache()
	return s.GetByID(roomTypeID)
}

// Delete xóa loại phòng, từ chối nếu còn phòng tham chiếu
func (s *RoomTypeService) Delete(roomTypeID uint) *errors.AppError {
	if _, appErr := s.GetByID(roomTypeID); appErr != nil {
		return appErr
	}

	var count int64
	if err := s.db.Model(&models.Room{}).Where("room_type_id = ?", roomTypeID).Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}
	if count > 0 {
		return errors.NewAppErrorWithContext(errors.ErrCodeRoomTypeInUse,
			"Loại phòng còn phòng tham chiếu, không thể xóa",
			map[string]interface{}{"roomTypeId": roomTypeID, "rooms": count})
	}

	if err := s.db.Delete(&models.RoomType{}, roomTypeID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa loại phòng", err)
	}

	s.invalidateCache()
	return nil
}

// List trả về toàn bộ loại phòng, cache qua Redis
func (s *RoomTypeService) List() ([]models.RoomType, *errors.AppError) {
	var roomTypes []models.RoomType

	if s.rdb != nil {
		if err := GetFromRedis(config.Ctx, s.rdb, roomTypesCacheKey, &roomTypes); err == nil && len(roomTypes) > 0 {
			return roomTypes, nil
		}
	}

	if err := s.db.Order("name").Find(&roomTypes).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn loại phòng", err)
	}

	if s.rdb != nil {
		if err := SetToRedis(config.Ctx, s.rdb, roomTypesCacheKey, roomTypes, roomTypesCacheTTL); err != nil {
			s.logger.Error("Không lưu được cache loại phòng: %v", err)
		}
	}

	return roomTypes, nil
}
