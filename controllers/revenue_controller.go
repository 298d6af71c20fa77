package controllers

import (
	"strconv"

	"hotelhub/constants"
	"hotelhub/dto"
	"hotelhub/response"
	"hotelhub/services"

	"github.com/gin-gonic/gin"
)

// GetRevenueReport trả về báo cáo doanh thu theo Daily / Weekly / Monthly /
// Yearly, nhóm theo ngày nhận phòng. Mọi query param đều tùy chọn: fromDate,
// toDate dạng dd/mm/yyyy, status và roomId thu hẹp thêm (admin)
func GetRevenueReport(c *gin.Context) {
	reportType := c.Query("type")
	if reportType == "" {
		reportType = constants.ReportTypeDaily
	}

	var filter services.RevenueFilter

	fromStr := c.Query("fromDate")
	if fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			response.ValidationError(c, "Định dạng ngày bắt đầu không hợp lệ")
			return
		}
		filter.From = &from
	}
	toStr := c.Query("toDate")
	if toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			response.ValidationError(c, "Định dạng ngày kết thúc không hợp lệ")
			return
		}
		filter.To = &to
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			filter.Status = &status
		}
	}
	if roomStr := c.Query("roomId"); roomStr != "" {
		if roomID, err := strconv.ParseUint(roomStr, 10, 32); err == nil {
			id := uint(roomID)
			filter.RoomID = &id
		}
	}

	buckets, appErr := revenueService.Report(reportType, filter)
	if appErr != nil {
		response.AppError(c, appErr)
		return
	}

	items := make([]dto.RevenueBucketItem, 0, len(buckets))
	total := 0.0
	for _, bucket := range buckets {
		items = append(items, dto.RevenueBucketItem{
			Period:   bucket.Period,
			Revenue:  bucket.Revenue,
			Bookings: bucket.Bookings,
		})
		total += bucket.Revenue
	}

	response.Success(c, dto.RevenueReportResponse{
		Type:     reportType,
		FromDate: fromStr,
		ToDate:   toStr,
		Total:    total,
		Buckets:  items,
	})
}
