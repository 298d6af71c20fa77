package validator

import (
	"testing"
	"time"

	"hotelhub/errors"
	"hotelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() models.User {
	return models.User{
		Username:    "nguyenvana",
		Email:       "a@example.com",
		Password:    "matkhau6",
		PhoneNumber: "0900000000",
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.User)
		wantCode errors.ErrorCode
	}{
		{"hợp lệ", func(u *models.User) {}, ""},
		{"thiếu username", func(u *models.User) { u.Username = "" }, errors.ErrCodeRequiredField},
		{"username quá ngắn", func(u *models.User) { u.Username = "ab" }, errors.ErrCodeValidation},
		{"thiếu email", func(u *models.User) { u.Email = "" }, errors.ErrCodeRequiredField},
		{"email sai định dạng", func(u *models.User) { u.Email = "khong-phai-email" }, errors.ErrCodeInvalidEmail},
		{"mật khẩu quá ngắn", func(u *models.User) { u.Password = "12345" }, errors.ErrCodeValidation},
		{"số điện thoại sai", func(u *models.User) { u.PhoneNumber = "123" }, errors.ErrCodeInvalidFormat},
		{"role lạ", func(u *models.User) { u.Role = 9 }, errors.ErrCodeInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(&user)

			err := ValidateUser(&user)

			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestValidateBookingDates(t *testing.T) {
	t.Run("một đêm khi bỏ trống ngày trả phòng", func(t *testing.T) {
		checkIn, checkOut, err := ValidateBookingDates("15/03/2026", "")
		require.NoError(t, err)
		assert.Nil(t, checkOut)
		assert.Equal(t, 2026, checkIn.Year())
		assert.Equal(t, 15, checkIn.Day())
	})

	t.Run("cặp ngày hợp lệ", func(t *testing.T) {
		checkIn, checkOut, err := ValidateBookingDates("15/03/2026", "18/03/2026")
		require.NoError(t, err)
		require.NotNil(t, checkOut)
		assert.True(t, checkOut.After(checkIn))
	})

	t.Run("ngày trả phòng trước ngày nhận", func(t *testing.T) {
		_, _, err := ValidateBookingDates("15/03/2026", "14/03/2026")
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	})

	t.Run("định dạng sai", func(t *testing.T) {
		_, _, err := ValidateBookingDates("2026-03-15", "")
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
	})

	t.Run("thiếu ngày nhận phòng", func(t *testing.T) {
		_, _, err := ValidateBookingDates("", "")
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeRequiredField, appErr.Code)
	})
}

func TestValidateRoom(t *testing.T) {
	room := models.Room{RoomNumber: "101", RoomTypeID: 1}
	assert.NoError(t, ValidateRoom(&room))

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	room.StartDate = &start
	room.EndDate = &end
	assert.NoError(t, ValidateRoom(&room))

	room.EndDate = &start
	appErr := errors.GetAppError(ValidateRoom(&room))
	require.NotNil(t, appErr, "khung mở bán rỗng phải bị từ chối")
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)

	room.StartDate = nil
	room.EndDate = nil
	room.RoomNumber = ""
	appErr = errors.GetAppError(ValidateRoom(&room))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRequiredField, appErr.Code)
}

func TestValidateRoomType(t *testing.T) {
	roomType := models.RoomType{Name: "Deluxe", NightlyPrice: 100}
	assert.NoError(t, ValidateRoomType(&roomType))

	roomType.NightlyPrice = 0
	assert.NoError(t, ValidateRoomType(&roomType), "giá 0 hợp lệ, chỉ giá âm bị từ chối")

	roomType.NightlyPrice = -50
	appErr := errors.GetAppError(ValidateRoomType(&roomType))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidAmount, appErr.Code)
}

func TestValidatePaymentType(t *testing.T) {
	assert.NoError(t, ValidatePaymentType(0))
	assert.NoError(t, ValidatePaymentType(2))
	assert.Error(t, ValidatePaymentType(7))
}
