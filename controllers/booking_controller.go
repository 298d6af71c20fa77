package controllers

import (
	"strconv"

	"hotelhub/constants"
	"hotelhub/dto"
	"hotelhub/middleware"
	"hotelhub/response"
	"hotelhub/services"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
)

// CreateBooking đặt phòng cho user đang đăng nhập
func CreateBooking(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkIn, checkOut, err := validator.ValidateBookingDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	booking, appErr := bookingService.Create(userID, req.RoomID, checkIn, checkOut)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	detail, appErr := bookingService.GetByID(booking.ID)
	if appErr != nil {
		response.Success(c, convertToBookingResponse(booking))
		return
	}
	response.Success(c, convertToBookingResponse(detail))
}

// GetBookings trả về danh sách booking: admin xem tất cả, customer chỉ xem
// booking của mình
func GetBookings(c *gin.Context) {
	userID, userRole, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	filter := services.BookingFilter{
		RoomNumber: c.Query("roomNumber"),
		Username:   c.Query("username"),
		Page:       1,
		Limit:      10,
	}

	if userRole != constants.RoleAdmin {
		filter.UserID = &userID
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
	if checkInStr := c.Query("checkInDate"); checkInStr != "" {
		if checkIn, err := parseDate(checkInStr); err == nil {
			filter.CheckInDate = &checkIn
		} else {
			response.ValidationError(c, "Định dạng ngày nhận phòng không hợp lệ")
			return
		}
	}
	if checkOutStr := c.Query("checkOutDate"); checkOutStr != "" {
		if checkOut, err := parseDate(checkOutStr); err == nil {
			filter.CheckOutDate = &checkOut
		} else {
			response.ValidationError(c, "Định dạng ngày trả phòng không hợp lệ")
			return
		}
	}

	bookings, total, appErr := bookingService.List(filter)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	data := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		data = append(data, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, data, filter.Page, filter.Limit, total)
}

// GetBookingDetail trả về chi tiết một booking. Customer chỉ xem được
// booking của chính mình.
func GetBookingDetail(c *gin.Context) {
	userID, userRole, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã booking không hợp lệ")
		return
	}

	booking, appErr := bookingService.GetByID(uint(bookingID))
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	if userRole != constants.RoleAdmin && booking.UserID != userID {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// CheckInBooking check-in một booking (admin)
func CheckInBooking(c *gin.Context) {
	staffID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã booking không hợp lệ")
		return
	}

	booking, appErr := bookingService.CheckIn(uint(bookingID), staffID)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// CheckOutBooking check-out một booking và ghi thanh toán (admin)
func CheckOutBooking(c *gin.Context) {
	staffID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã booking không hợp lệ")
		return
	}

	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.PaymentType = constants.PaymentTypeCash
	}
	if err := validator.ValidatePaymentType(req.PaymentType); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	booking, appErr := bookingService.CheckOut(uint(bookingID), staffID, req.PaymentType)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// CancelBooking hủy một booking Pending của chính chủ
func CancelBooking(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã booking không hợp lệ")
		return
	}

	booking, appErr := bookingService.Cancel(uint(bookingID), userID)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}
