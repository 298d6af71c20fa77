package dto

// UserResponse là DTO cho thông tin user, không bao giờ chứa mật khẩu
type UserResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
	Status      int    `json:"status"`
	Points      int    `json:"points"`
	CreatedAt   string `json:"createdAt"`
}

// UpdateProfileRequest là DTO cho request cập nhật hồ sơ
type UpdateProfileRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

// ChangePasswordRequest là DTO cho request đổi mật khẩu
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdateUserStatusRequest là DTO cho request khóa / mở tài khoản (admin)
type UpdateUserStatusRequest struct {
	Status *int `json:"status" binding:"required"`
}

// PointTransactionResponse là một dòng lịch sử điểm thưởng
type PointTransactionResponse struct {
	ID        uint   `json:"id"`
	BookingID *uint  `json:"bookingId,omitempty"`
	Points    int    `json:"points"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}
