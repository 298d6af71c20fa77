package response

import (
	"net/http"

	"hotelhub/errors"
	"hotelhub/utils"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang, page tính từ 1
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ErrorBody mang mã lỗi máy đọc được cho client
type ErrorBody struct {
	Code    int                    `json:"code"`
	Mess    string                 `json:"mess"`
	Error   string                 `json:"error"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError trả về response lỗi server, không lộ chi tiết bên trong
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Không có quyền truy cập",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Không tìm thấy",
	})
}

// NotFoundMess trả về 404 kèm thông điệp cụ thể
func NotFoundMess(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// AppError dịch một AppError sang response tương ứng, giữ nguyên mã lỗi
// để client phân biệt được từng precondition bị từ chối. Chi tiết lỗi
// bên trong chỉ ghi log, không trả về client
func AppError(c *gin.Context, appErr *errors.AppError) {
	status := statusForCode(appErr.Code)
	if status == http.StatusInternalServerError {
		utils.LogError("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
		ServerError(c)
		return
	}
	c.JSON(status, ErrorBody{
		Code:    0,
		Mess:    appErr.Message,
		Error:   string(appErr.Code),
		Context: appErr.Context,
	})
}

func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken,
		errors.ErrCodeMissingToken, errors.ErrCodeExpiredToken,
		errors.ErrCodeInvalidLogin:
		return http.StatusUnauthorized
	case errors.ErrCodeInvalidRole, errors.ErrCodeNotBookingOwner:
		return http.StatusForbidden
	case errors.ErrCodeBookingNotFound, errors.ErrCodeRoomNotFound,
		errors.ErrCodeRoomTypeNotFound, errors.ErrCodeUserNotFound,
		errors.ErrCodeDBNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidStatus, errors.ErrCodeEarlyCheckIn,
		errors.ErrCodeLateCheckIn, errors.ErrCodeMissingCheckInDate,
		errors.ErrCodeRoomNumberExists, errors.ErrCodeRoomNotAvailable,
		errors.ErrCodeRoomInUse, errors.ErrCodeRoomTypeInUse,
		errors.ErrCodeUserExists, errors.ErrCodeDBDuplicate,
		errors.ErrCodeDBConflict:
		return http.StatusConflict
	case errors.ErrCodeDBError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
