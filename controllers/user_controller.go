package controllers

import (
	"strconv"
	"time"

	"hotelhub/dto"
	"hotelhub/middleware"
	"hotelhub/response"
	"hotelhub/services"

	"github.com/gin-gonic/gin"
)

// GetProfile trả về hồ sơ của user đang đăng nhập
func GetProfile(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	user, appErr := userService.GetByID(userID)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// UpdateProfile cập nhật họ tên, số điện thoại của user đang đăng nhập
func UpdateProfile(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, appErr := userService.UpdateProfile(userID, req.FullName, req.PhoneNumber)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// ChangePassword đổi mật khẩu của user đang đăng nhập
func ChangePassword(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if len(req.NewPassword) < 6 {
		response.ValidationError(c, "Mật khẩu phải có ít nhất 6 ký tự")
		return
	}

	if appErr := userService.ChangePassword(userID, req.OldPassword, req.NewPassword); appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, nil)
}

// GetPointHistory trả về lịch sử điểm thưởng của user đang đăng nhập
func GetPointHistory(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	transactions, appErr := userService.PointHistory(userID)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	data := make([]dto.PointTransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, dto.PointTransactionResponse{
			ID:        transaction.ID,
			BookingID: transaction.BookingID,
			Points:    transaction.Points,
			Reason:    transaction.Reason,
			CreatedAt: transaction.CreatedAt.Format(time.RFC3339),
		})
	}

	response.Success(c, data)
}

// GetUsers trả về danh sách người dùng (admin)
func GetUsers(c *gin.Context) {
	filter := services.UserFilter{
		Keyword: c.Query("keyword"),
		Page:    1,
		Limit:   10,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 1 {
			filter.Page = page
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if roleStr := c.Query("role"); roleStr != "" {
		if role, err := strconv.Atoi(roleStr); err == nil {
			filter.Role = &role
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			filter.Status = &status
		}
	}

	users, total, appErr := userService.List(filter)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	data := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, convertToUserResponse(user))
	}

	response.SuccessWithPagination(c, data, filter.Page, filter.Limit, total)
}

// UpdateUserStatus khóa / mở một tài khoản (admin)
func UpdateUserStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã người dùng không hợp lệ")
		return
	}

	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, appErr := userService.SetStatus(uint(userID), *req.Status)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToUserResponse(user))
}
