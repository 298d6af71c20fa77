package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"hotelhub/config"
	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const (
	// Hạn access token: 24h
	AccessTokenExpiryMinutes = 24 * 60

	resetTokenTTL = time.Hour
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// AuthService xử lý đăng ký, đăng nhập và đặt lại mật khẩu
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) getUserByIdentifier(identifier string) (models.User, error) {
	var user models.User
	err := s.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	return user, err
}

// Register tạo tài khoản mới với role Customer, kiểm tra trùng username/email
// trước khi ghi
func (s *AuthService) Register(username, email, password, fullName, phoneNumber string) (models.User, *errors.AppError) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn người dùng", err)
	}
	if count > 0 {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists,
			fmt.Sprintf("Tên đăng nhập %s đã được sử dụng", username), nil)
	}

	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn người dùng", err)
	}
	if count > 0 {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists,
			fmt.Sprintf("Email %s đã được sử dụng", email), nil)
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể băm mật khẩu", err)
	}

	user := models.User{
		Username:    username,
		Email:       email,
		Password:    hashedPassword,
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		Role:        constants.RoleCustomer,
		Status:      constants.UserStatusActive,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo người dùng", err)
	}

	// Gửi email chào mừng, lỗi gửi mail không chặn đăng ký
	go func() {
		_ = SendWelcomeEmail(user.Email, user.Username)
	}()

	return user, nil
}

// Login nhận identifier là username hoặc email. Sai identifier hay sai mật
// khẩu đều trả về cùng một thông điệp, không tiết lộ trường nào sai.
func (s *AuthService) Login(identifier, password string) (models.User, *errors.AppError) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	invalidLogin := errors.NewAppError(errors.ErrCodeInvalidLogin,
		"Tên đăng nhập hoặc mật khẩu không hợp lệ", nil)

	user, err := s.getUserByIdentifier(identifier)
	if err != nil {
		return models.User{}, invalidLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, invalidLogin
	}

	if user.Status != constants.UserStatusActive {
		return models.User{}, errors.NewAppError(errors.ErrCodeUnauthorized,
			"Tài khoản đã bị vô hiệu hóa", nil)
	}

	return user, nil
}

// LoginWithGoogle xác thực Google ID token và tự tạo tài khoản Customer nếu
// email chưa tồn tại
func (s *AuthService) LoginWithGoogle(tokenId string) (models.User, *errors.AppError) {
	clientID := config.GetEnv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Google token không hợp lệ", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidEmail, "Google token không chứa email", nil)
	}
	email = strings.ToLower(email)

	var user models.User
	err = s.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn người dùng", err)
	}

	user = models.User{
		Username: email,
		Email:    email,
		FullName: name,
		Role:     constants.RoleCustomer,
		Status:   constants.UserStatusActive,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo người dùng", err)
	}
	return user, nil
}

// ForgotPassword sinh token ngẫu nhiên có hạn 1 giờ và gửi qua email
func (s *AuthService) ForgotPassword(identifier string) *errors.AppError {
	user, err := s.getUserByIdentifier(strings.ToLower(strings.TrimSpace(identifier)))
	if err != nil {
		return errors.NewAppError(errors.ErrCodeUserNotFound, "Người dùng không tồn tại", nil)
	}

	token := uuid.NewString()
	expiry := time.Now().Add(resetTokenTTL)

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật mã đặt lại mật khẩu", err)
	}

	if err := SendResetPasswordEmail(user.Email, token); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể gửi email đặt lại mật khẩu", err)
	}

	return nil
}

// ResetPassword khớp token, kiểm tra hạn rồi băm mật khẩu mới và xóa token
func (s *AuthService) ResetPassword(token, newPassword string) *errors.AppError {
	var user models.User
	if err := s.db.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidToken, "Mã đặt lại mật khẩu không hợp lệ", nil)
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return errors.NewAppError(errors.ErrCodeExpiredToken, "Mã đặt lại mật khẩu đã hết hạn", nil)
	}

	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể băm mật khẩu", err)
	}

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"password":           hashedPassword,
		"reset_token":        "",
		"reset_token_expiry": nil,
	}).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật mật khẩu mới", err)
	}

	return nil
}

// IssueToken phát hành access token cho user
func (s *AuthService) IssueToken(user models.User) (string, error) {
	return GenerateToken(UserInfo{
		UserId:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, AccessTokenExpiryMinutes)
}
