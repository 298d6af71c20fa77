package controllers

import (
	"strconv"

	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
)

// CreateRoomType thêm loại phòng mới (admin)
func CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	roomType := models.RoomType{
		Name:         req.Name,
		Description:  req.Description,
		NightlyPrice: req.NightlyPrice,
	}
	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if appErr := roomTypeService.Create(&roomType); appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToRoomTypeResponse(roomType))
}

// GetRoomTypes trả về toàn bộ loại phòng
func GetRoomTypes(c *gin.Context) {
	roomTypes, appErr := roomTypeService.List()
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	data := make([]dto.RoomTypeResponse, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		data = append(data, convertToRoomTypeResponse(roomType))
	}

	response.Success(c, data)
}

// GetRoomTypeDetail trả về chi tiết một loại phòng
func GetRoomTypeDetail(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã loại phòng không hợp lệ")
		return
	}

	roomType, appErr := roomTypeService.GetByID(uint(roomTypeID))
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToRoomTypeResponse(roomType))
}

// UpdateRoomType cập nhật loại phòng (admin). Giá mới chỉ áp cho booking
// tạo sau đó.
func UpdateRoomType(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã loại phòng không hợp lệ")
		return
	}

	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.NightlyPrice != nil {
		updates["nightly_price"] = *req.NightlyPrice
	}
	if len(updates) == 0 {
		response.BadRequest(c, "Không có dữ liệu để cập nhật")
		return
	}

	roomType, appErr := roomTypeService.Update(uint(roomTypeID), updates)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToRoomTypeResponse(roomType))
}

// DeleteRoomType xóa loại phòng (admin), từ chối nếu còn phòng tham chiếu
func DeleteRoomType(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã loại phòng không hợp lệ")
		return
	}

	if appErr := roomTypeService.Delete(uint(roomTypeID)); appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, nil)
}
