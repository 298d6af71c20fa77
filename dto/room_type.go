package dto

// CreateRoomTypeRequest là DTO cho request tạo loại phòng
type CreateRoomTypeRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	NightlyPrice float64 `json:"nightlyPrice" binding:"required"`
}

// UpdateRoomTypeRequest là DTO cho request cập nhật loại phòng, field nil giữ nguyên
type UpdateRoomTypeRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	NightlyPrice *float64 `json:"nightlyPrice"`
}

// RoomTypeResponse là DTO cho một loại phòng
type RoomTypeResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NightlyPrice float64 `json:"nightlyPrice"`
}
