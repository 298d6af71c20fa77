package services

import (
	"testing"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKey(t *testing.T) {
	// Thứ năm, tuần ISO 2
	at := time.Date(2026, 1, 8, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		reportType string
		want       string
	}{
		{constants.ReportTypeDaily, "2026-01-08"},
		{constants.ReportTypeWeekly, "2026-W02"},
		{constants.ReportTypeMonthly, "2026-01"},
		{constants.ReportTypeYearly, "2026"},
	}

	for _, tt := range tests {
		t.Run(tt.reportType, func(t *testing.T) {
			assert.Equal(t, tt.want, bucketKey(at, tt.reportType))
		})
	}
}

func TestBucketKeyWeekSpansYearBoundary(t *testing.T) {
	// 1/1/2027 là thứ sáu, thuộc tuần ISO 53 của 2026
	at := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-W53", bucketKey(at, constants.ReportTypeWeekly))
}

func TestReportRejectsUnknownType(t *testing.T) {
	db, _ := setupTestDB(t)
	svc := NewRevenueService(RevenueServiceOptions{DB: db})

	_, appErr := svc.Report("Hourly", RevenueFilter{})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
}

func TestReportRejectsReversedRange(t *testing.T) {
	db, _ := setupTestDB(t)
	svc := NewRevenueService(RevenueServiceOptions{DB: db})

	from := time.Now()
	to := time.Now().AddDate(0, 0, -1)
	_, appErr := svc.Report(constants.ReportTypeDaily, RevenueFilter{From: &from, To: &to})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidDate, appErr.Code)
}

func TestReportGroupsAndExcludesCancelled(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewRevenueService(RevenueServiceOptions{DB: db})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	d1 := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	// Truy vấn đã loại Cancelled bằng điều kiện status <>
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "check_in_date", "status", "total_amount"}).
			AddRow(1, d1, constants.BookingStatusCompleted, 300.0).
			AddRow(2, d1, constants.BookingStatusConfirmed, 200.0).
			AddRow(3, d2, constants.BookingStatusPending, 150.0))

	buckets, appErr := svc.Report(constants.ReportTypeDaily, RevenueFilter{From: &from, To: &to})

	require.Nil(t, appErr)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-03-05", buckets[0].Period)
	assert.Equal(t, 500.0, buckets[0].Revenue)
	assert.Equal(t, 2, buckets[0].Bookings)
	assert.Equal(t, "2026-03-07", buckets[1].Period)
	assert.Equal(t, 150.0, buckets[1].Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
