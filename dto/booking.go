package dto

// CreateBookingRequest là DTO cho request đặt phòng, ngày dạng dd/mm/yyyy,
// checkOutDate rỗng nghĩa là một đêm
type CreateBookingRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate"`
}

// CheckOutRequest là DTO cho request check-out kèm phương thức thanh toán
type CheckOutRequest struct {
	PaymentType int `json:"paymentType"`
}

// BookingResponse là DTO cho một booking trong danh sách / chi tiết
type BookingResponse struct {
	ID           uint                `json:"id"`
	Status       int                 `json:"status"`
	CheckInDate  string              `json:"checkInDate"`
	CheckOutDate string              `json:"checkOutDate"`
	TotalAmount  float64             `json:"totalAmount"`
	StaffID      *uint               `json:"staffId,omitempty"`
	User         BookingUserResponse `json:"user"`
	Room         BookingRoomResponse `json:"room"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
}

// BookingUserResponse là thông tin rút gọn của khách trong booking
type BookingUserResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingRoomResponse là thông tin rút gọn của phòng trong booking
type BookingRoomResponse struct {
	ID           uint    `json:"id"`
	RoomNumber   string  `json:"roomNumber"`
	RoomTypeName string  `json:"roomTypeName"`
	NightlyPrice float64 `json:"nightlyPrice"`
}
