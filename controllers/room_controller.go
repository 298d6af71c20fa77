package controllers

import (
	"strconv"

	"hotelhub/constants"
	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
)

// CreateRoom thêm phòng mới (admin)
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room := models.Room{
		RoomNumber:  req.RoomNumber,
		RoomTypeID:  req.RoomTypeID,
		Description: req.Description,
		Status:      constants.RoomStatusAvailable,
	}

	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			response.ValidationError(c, "Định dạng ngày bắt đầu không hợp lệ")
			return
		}
		room.StartDate = &startDate
	}
	if req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			response.ValidationError(c, "Định dạng ngày kết thúc không hợp lệ")
			return
		}
		room.EndDate = &endDate
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if appErr := roomService.Create(&room); appErr != nil {
		response.AppError(c, appErr)
		return
	}

	detail, appErr := roomService.GetByID(room.ID)
	if appErr != nil {
		response.Success(c, convertToRoomResponse(room))
		return
	}
	response.Success(c, convertToRoomResponse(detail))
}

// GetRooms trả về danh sách phòng, hỗ trợ lọc theo trạng thái, loại phòng
// và ngày còn trống. Không truyền status thì chỉ trả phòng Available.
func GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		RoomNumber: c.Query("roomNumber"),
		Page:       1,
		Limit:      10,
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
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			filter.Status = &status
		}
	}
	if roomTypeStr := c.Query("roomTypeId"); roomTypeStr != "" {
		if roomTypeID, err := strconv.ParseUint(roomTypeStr, 10, 32); err == nil {
			id := uint(roomTypeID)
			filter.RoomTypeID = &id
		}
	}
	if dateStr := c.Query("availableOn"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			response.ValidationError(c, "Định dạng ngày không hợp lệ")
			return
		}
		filter.AvailableOn = &date
	}

	rooms, total, appErr := roomService.List(filter)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	data := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, convertToRoomResponse(room))
	}

	response.SuccessWithPagination(c, data, filter.Page, filter.Limit, total)
}

// GetRoomDetail trả về chi tiết một phòng
func GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã phòng không hợp lệ")
		return
	}

	room, appErr := roomService.GetByID(uint(roomID))
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// UpdateRoom cập nhật phòng (admin), field không gửi giữ nguyên
func UpdateRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã phòng không hợp lệ")
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updates := map[string]interface{}{}
	if req.RoomNumber != nil {
		updates["room_number"] = *req.RoomNumber
	}
	if req.RoomTypeID != nil {
		updates["room_type_id"] = *req.RoomTypeID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			response.ValidationError(c, "Định dạng ngày bắt đầu không hợp lệ")
			return
		}
		updates["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			response.ValidationError(c, "Định dạng ngày kết thúc không hợp lệ")
			return
		}
		updates["end_date"] = endDate
	}
	if len(updates) == 0 {
		response.BadRequest(c, "Không có dữ liệu để cập nhật")
		return
	}

	room, appErr := roomService.Update(uint(roomID), updates)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// DeleteRoom xóa phòng (admin), từ chối nếu còn booking tham chiếu
func DeleteRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã phòng không hợp lệ")
		return
	}

	if appErr := roomService.Delete(uint(roomID)); appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, nil)
}

// UploadRoomMedia upload ảnh / video của phòng lên Cloudinary rồi gắn vào
// phòng (admin)
func UploadRoomMedia(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã phòng không hợp lệ")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Thiếu file upload")
		return
	}

	mediaType := constants.MediaTypeImage
	if mediaTypeStr := c.PostForm("mediaType"); mediaTypeStr != "" {
		if parsed, err := strconv.Atoi(mediaTypeStr); err == nil {
			mediaType = parsed
		}
	}
	if mediaType != constants.MediaTypeImage && mediaType != constants.MediaTypeVideo {
		response.ValidationError(c, "Loại media không hợp lệ")
		return
	}

	url, appErr := services.UploadImage(c.Request.Context(), file)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	media, appErr := roomService.AddMedia(uint(roomID), url, mediaType)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, dto.RoomMediaResponse{
		ID:        media.ID,
		URL:       media.URL,
		MediaType: media.MediaType,
	})
}

// DeleteRoomMedia gỡ một media khỏi phòng (admin)
func DeleteRoomMedia(c *gin.Context) {
	mediaID, err := strconv.ParseUint(c.Param("mediaId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã media không hợp lệ")
		return
	}

	if appErr := roomService.RemoveMedia(uint(mediaID)); appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, nil)
}

// SearchRooms gợi ý phòng theo chuỗi tìm kiếm, chịu được gõ thiếu dấu
func SearchRooms(c *gin.Context) {
	query := c.Query("q")

	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	rooms, appErr := searchService.SuggestRooms(query, limit)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	data := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, convertToRoomResponse(room))
	}

	response.Success(c, data)
}
