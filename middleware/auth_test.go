package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelhub/constants"
	"hotelhub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(roles ...int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(roles...), func(c *gin.Context) {
		userID, role, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := newAuthRouter()
	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := newAuthRouter()
	w := doRequest(router, "khong-phai-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	token, err := services.GenerateToken(services.UserInfo{UserId: 1}, -5)
	require.NoError(t, err)

	router := newAuthRouter()
	w := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := services.GenerateToken(services.UserInfo{
		UserId: 9,
		Role:   constants.RoleCustomer,
	}, 60)
	require.NoError(t, err)

	router := newAuthRouter()
	w := doRequest(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":9`)
}

func TestAuthMiddlewareRoleCheck(t *testing.T) {
	customerToken, err := services.GenerateToken(services.UserInfo{
		UserId: 9,
		Role:   constants.RoleCustomer,
	}, 60)
	require.NoError(t, err)

	adminToken, err := services.GenerateToken(services.UserInfo{
		UserId: 1,
		Role:   constants.RoleAdmin,
	}, 60)
	require.NoError(t, err)

	router := newAuthRouter(constants.RoleAdmin)

	t.Run("customer bị chặn", func(t *testing.T) {
		w := doRequest(router, customerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin đi qua", func(t *testing.T) {
		w := doRequest(router, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
