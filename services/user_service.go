package services

import (
	"sort"
	"strings"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserFilter là bộ lọc danh sách người dùng, page tính từ 1
type UserFilter struct {
	Keyword string // khớp gần đúng username, email, họ tên (bỏ dấu)
	Role    *int
	Status  *int
	Page    int
	Limit   int
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// UserService quản lý hồ sơ và điểm thưởng của người dùng
type UserService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{db: opts.DB, logger: l}
}

func (s *UserService) GetByID(userID uint) (models.User, *errors.AppError) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return models.User{}, errors.NewAppErrorWithContext(errors.ErrCodeUserNotFound,
			"Không tìm thấy người dùng", map[string]interface{}{"userId": userID})
	}
	return user, nil
}

// UpdateProfile cho user sửa họ tên và số điện thoại của chính mình
func (s *UserService) UpdateProfile(userID uint, fullName string, phoneNumber string) (models.User, *errors.AppError) {
	user, appErr := s.GetByID(userID)
	if appErr != nil {
		return models.User{}, appErr
	}

	updates := map[string]interface{}{}
	if fullName != "" {
		updates["full_name"] = fullName
	}
	if phoneNumber != "" {
		updates["phone_number"] = phoneNumber
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật hồ sơ", err)
	}
	return s.GetByID(userID)
}

// ChangePassword yêu cầu mật khẩu cũ đúng trước khi băm mật khẩu mới
func (s *UserService) ChangePassword(userID uint, oldPassword string, newPassword string) *errors.AppError {
	user, appErr := s.GetByID(userID)
	if appErr != nil {
		return appErr
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu cũ không đúng", nil)
	}

	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể băm mật khẩu", err)
	}

	if err := s.db.Model(&user).Update("password", hashedPassword).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật mật khẩu", err)
	}
	return nil
}

// SetStatus kích hoạt / vô hiệu hóa tài khoản (admin)
func (s *UserService) SetStatus(userID uint, status int) (models.User, *errors.AppError) {
	if status != constants.UserStatusActive && status != constants.UserStatusDeactive {
		return models.User{}, errors.NewAppError(errors.ErrCodeValidation, "Trạng thái người dùng không hợp lệ", nil)
	}

	user, appErr := s.GetByID(userID)
	if appErr != nil {
		return models.User{}, appErr
	}

	if err := s.db.Model(&user).Update("status", status).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái", err)
	}
	return s.GetByID(userID)
}

// PointHistory trả về lịch sử cộng / trừ điểm, mới nhất trước
func (s *UserService) PointHistory(userID uint) ([]models.PointTransaction, *errors.AppError) {
	if _, appErr := s.GetByID(userID); appErr != nil {
		return nil, appErr
	}

	var transactions []models.PointTransaction
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn điểm thưởng", err)
	}
	return transactions, nil
}

// List trả về một trang người dùng (admin), keyword khớp bỏ dấu
func (s *UserService) List(filter UserFilter) ([]models.User, int, *errors.AppError) {
	tx := s.db.Model(&models.User{})
	if filter.Role != nil {
		tx = tx.Where("role = ?", *filter.Role)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}

	var allUsers []models.User
	if err := tx.Find(&allUsers).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn người dùng", err)
	}

	filtered := allUsers
	if filter.Keyword != "" {
		keyword := normalizeUserKeyword(filter.Keyword)
		filtered = make([]models.User, 0)
		for _, user := range allUsers {
			if strings.Contains(normalizeUserKeyword(user.Username), keyword) ||
				strings.Contains(normalizeUserKeyword(user.Email), keyword) ||
				strings.Contains(normalizeUserKeyword(user.FullName), keyword) {
				filtered = append(filtered, user)
			}
		}
	}

	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
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
		filtered = []models.User{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	return filtered, total, nil
}

// CleanupExpiredResetTokens xóa mã đặt lại mật khẩu đã quá hạn (chạy theo cron)
func (s *UserService) CleanupExpiredResetTokens() (int64, error) {
	res := s.db.Model(&models.User{}).
		Where("reset_token <> '' AND reset_token_expiry < ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_token":        "",
			"reset_token_expiry": nil,
		})
	return res.RowsAffected, res.Error
}

func normalizeUserKeyword(s string) string {
	return unidecode.Unidecode(strings.ToLower(strings.TrimSpace(s)))
}
