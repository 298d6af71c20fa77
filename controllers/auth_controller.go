package controllers

import (
	"hotelhub/dto"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
)

// Register xử lý đăng ký tài khoản Customer
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := validator.ValidateUser(&user); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.AppError(c, appErr)
			return
		}
		response.ValidationError(c, err.Error())
		return
	}

	created, appErr := authService.Register(req.Username, req.Email, req.Password, req.FullName, req.PhoneNumber)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	// Đăng ký xong đăng nhập luôn, trả token như Login
	token, err := authService.IssueToken(created)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		User:        convertToUserResponse(created),
	})
}

// Login xử lý đăng nhập bằng username hoặc email
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, appErr := authService.Login(req.Identifier, req.Password)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	token, err := authService.IssueToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		User:        convertToUserResponse(user),
	})
}

// LoginWithGoogle xử lý đăng nhập bằng Google ID token
func LoginWithGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, appErr := authService.LoginWithGoogle(req.TokenId)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	token, err := authService.IssueToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		User:        convertToUserResponse(user),
	})
}

// ForgotPassword gửi mã đặt lại mật khẩu qua email
func ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if appErr := authService.ForgotPassword(req.Identifier); appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, nil)
}

// ResetPassword đặt mật khẩu mới bằng mã đã gửi qua email
func ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if len(req.NewPassword) < 6 {
		response.ValidationError(c, "Mật khẩu phải có ít nhất 6 ký tự")
		return
	}

	if appErr := authService.ResetPassword(req.Token, req.NewPassword); appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, nil)
}
