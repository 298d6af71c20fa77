package controllers

import (
	"strconv"

	"hotelhub/dto"
	"hotelhub/middleware"
	"hotelhub/response"
	"hotelhub/services"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
)

// GetPayments trả về sổ thanh toán (admin)
func GetPayments(c *gin.Context) {
	filter := services.PaymentFilter{
		Page:  1,
		Limit: 10,
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
	if typeStr := c.Query("paymentType"); typeStr != "" {
		if paymentType, err := strconv.Atoi(typeStr); err == nil {
			filter.PaymentType = &paymentType
		}
	}
	if bookingStr := c.Query("bookingId"); bookingStr != "" {
		if bookingID, err := strconv.ParseUint(bookingStr, 10, 32); err == nil {
			id := uint(bookingID)
			filter.BookingID = &id
		}
	}

	payments, total, appErr := paymentService.List(filter)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	data := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		data = append(data, convertToPaymentResponse(payment))
	}

	response.SuccessWithPagination(c, data, filter.Page, filter.Limit, int(total))
}

// GetBookingPayments trả về mọi dòng thanh toán của một booking (admin)
func GetBookingPayments(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã booking không hợp lệ")
		return
	}

	payments, appErr := paymentService.ListByBooking(uint(bookingID))
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	data := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		data = append(data, convertToPaymentResponse(payment))
	}

	response.Success(c, data)
}

// ProcessPayment thanh toán một booking Confirmed với số tiền tường minh
// (admin)
func ProcessPayment(c *gin.Context) {
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

	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidatePaymentType(req.PaymentType); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	payment, appErr := paymentService.Process(uint(bookingID), staffID, req.Amount, req.PaymentType)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToPaymentResponse(payment))
}

// RefundBooking hoàn tiền một booking đã Completed (admin)
func RefundBooking(c *gin.Context) {
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

	var req dto.RefundRequest
	_ = c.ShouldBindJSON(&req)

	refund, appErr := paymentService.Refund(uint(bookingID), staffID, req.Amount)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToPaymentResponse(refund))
}

// RecordPayment ghi một dòng điều chỉnh vào sổ thanh toán, không đổi trạng
// thái booking (admin, có audit log)
func RecordPayment(c *gin.Context) {
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

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidatePaymentType(req.PaymentType); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	payment, appErr := paymentService.Record(uint(bookingID), staffID, req.Amount, req.PaymentType, req.Status)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	response.Success(c, convertToPaymentResponse(payment))
}
