package middleware

import (
	"strings"

	"hotelhub/response"
	"hotelhub/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xác thực Bearer token và kiểm tra role nếu có yêu cầu
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, appErr := services.ParseToken(tokenString)
		if appErr != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == claims.UserInfo.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin user vào context
		c.Set("userID", claims.UserInfo.UserId)
		c.Set("userRole", claims.UserInfo.Role)
		c.Next()
	}
}

// CurrentUser lấy userID và role đã được AuthMiddleware gán vào context
func CurrentUser(c *gin.Context) (uint, int, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return 0, 0, false
	}
	userRole, ok := c.Get("userRole")
	if !ok {
		return 0, 0, false
	}
	return userID.(uint), userRole.(int), true
}
