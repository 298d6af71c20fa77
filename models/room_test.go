package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailableOn(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		room Room
		date time.Time
		want bool
	}{
		{"không giới hạn", Room{}, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"trong khung", Room{StartDate: &start, EndDate: &end}, start.AddDate(0, 0, 10), true},
		{"đúng biên đầu", Room{StartDate: &start, EndDate: &end}, start, true},
		{"đúng biên cuối", Room{StartDate: &start, EndDate: &end}, end, true},
		{"trước khung", Room{StartDate: &start, EndDate: &end}, start.AddDate(0, 0, -1), false},
		{"sau khung", Room{StartDate: &start, EndDate: &end}, end.AddDate(0, 0, 1), false},
		{"chỉ giới hạn đầu", Room{StartDate: &start}, end.AddDate(1, 0, 0), true},
		{"chỉ giới hạn cuối", Room{EndDate: &end}, start.AddDate(0, 0, -60), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.room.AvailableOn(tt.date))
		})
	}
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	booking := Booking{CheckInDate: &checkIn, CheckOutDate: &checkOut}
	assert.Equal(t, 3, booking.Nights())

	assert.Equal(t, 1, (&Booking{}).Nights(), "thiếu ngày coi như một đêm")
}

func TestValidateStatus(t *testing.T) {
	assert.NoError(t, (&Room{Status: 1}).ValidateStatus())
	assert.NoError(t, (&Room{Status: 3}).ValidateStatus())
	assert.Error(t, (&Room{Status: 0}).ValidateStatus())
	assert.Error(t, (&Room{Status: 4}).ValidateStatus())
}
