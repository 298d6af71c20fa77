package dto

// CreateRoomRequest là DTO cho request tạo phòng, ngày dạng dd/mm/yyyy,
// startDate / endDate rỗng nghĩa là không giới hạn khung mở bán
type CreateRoomRequest struct {
	RoomNumber  string `json:"roomNumber" binding:"required"`
	RoomTypeID  uint   `json:"roomTypeId" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng, field nil giữ nguyên,
// ngày dạng dd/mm/yyyy
type UpdateRoomRequest struct {
	RoomNumber  *string `json:"roomNumber"`
	RoomTypeID  *uint   `json:"roomTypeId"`
	Status      *int    `json:"status"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// RoomResponse là DTO cho một phòng trong danh sách / chi tiết
type RoomResponse struct {
	ID          uint                `json:"id"`
	RoomNumber  string              `json:"roomNumber"`
	Status      int                 `json:"status"`
	Description string              `json:"description"`
	StartDate   string              `json:"startDate,omitempty"`
	EndDate     string              `json:"endDate,omitempty"`
	RoomType    RoomTypeResponse    `json:"roomType"`
	Media       []RoomMediaResponse `json:"media,omitempty"`
}

// RoomMediaResponse là một ảnh / video của phòng
type RoomMediaResponse struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	MediaType int    `json:"mediaType"`
}
