package dto

// RegisterRequest là DTO cho request đăng ký tài khoản
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

// LoginRequest nhận identifier là username hoặc email
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// GoogleLoginRequest là DTO cho request đăng nhập Google
type GoogleLoginRequest struct {
	TokenId string `json:"tokenId" binding:"required"`
}

// ForgotPasswordRequest là DTO cho request quên mật khẩu
type ForgotPasswordRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

// ResetPasswordRequest là DTO cho request đặt lại mật khẩu
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// LoginResponse trả về token kèm thông tin user
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}
