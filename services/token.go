package services

import (
	"time"

	"hotelhub/config"
	"hotelhub/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId   uint   `json:"userid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     int    `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

// GenerateToken phát hành access token HS256 có hạn dùng
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseToken xác thực chữ ký và hạn dùng, trả về claims.
// Token hết hạn hoặc sai chữ ký đều bị từ chối trước khi vào controller.
func ParseToken(tokenString string) (*Claims, *errors.AppError) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Phương thức ký không hợp lệ", nil)
		}
		return secretKey, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errors.NewAppError(errors.ErrCodeExpiredToken, "Token đã hết hạn", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}
	return claims, nil
}

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims, appErr := ParseToken(tokenString)
	if appErr != nil {
		return 0, 0, appErr
	}
	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
