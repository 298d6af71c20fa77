package services

import (
	"testing"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCreateRejectsDuplicateNumber(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewRoomService(RoomServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	room := models.Room{RoomNumber: "101", RoomTypeID: 1, Status: constants.RoomStatusAvailable}
	appErr := svc.Create(&room)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRoomNumberExists, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomCreateRejectsUnknownRoomType(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewRoomService(RoomServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT (.+) FROM "room_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	room := models.Room{RoomNumber: "101", RoomTypeID: 9, Status: constants.RoomStatusAvailable}
	appErr := svc.Create(&room)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRoomTypeNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomDeleteRejectsReferencedBookings(t *testing.T) {
	tests := []struct {
		name     string
		bookings int64
	}{
		{"còn booking đang hoạt động", 2},
		{"chỉ còn booking đã kết thúc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			svc := NewRoomService(RoomServiceOptions{DB: db})

			mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "status", "version"}).
					AddRow(5, "101", constants.RoomStatusAvailable, 1))
			mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.bookings))

			appErr := svc.Delete(5)

			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrCodeRoomInUse, appErr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomListDefaultsToAvailable(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewRoomService(RoomServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "room_type_id", "status", "version"}).
			AddRow(1, "101", 1, constants.RoomStatusAvailable, 1).
			AddRow(2, "102", 1, constants.RoomStatusBooked, 1).
			AddRow(3, "103", 1, constants.RoomStatusMaintenance, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "room_media"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "url", "media_type"}))
	mock.ExpectQuery(`SELECT (.+) FROM "room_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "nightly_price"}).
			AddRow(1, "Deluxe", 100.0))

	rooms, total, appErr := svc.List(RoomFilter{Page: 1, Limit: 10})

	require.Nil(t, appErr)
	assert.Equal(t, 1, total)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomListStatusOverride(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewRoomService(RoomServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "room_type_id", "status", "version"}).
			AddRow(1, "101", 1, constants.RoomStatusAvailable, 1).
			AddRow(2, "102", 1, constants.RoomStatusMaintenance, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "room_media"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "url", "media_type"}))
	mock.ExpectQuery(`SELECT (.+) FROM "room_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "nightly_price"}).
			AddRow(1, "Deluxe", 100.0))

	status := constants.RoomStatusMaintenance
	rooms, total, appErr := svc.List(RoomFilter{Status: &status, Page: 1, Limit: 10})

	require.Nil(t, appErr)
	assert.Equal(t, 1, total)
	require.Len(t, rooms, 1)
	assert.Equal(t, "102", rooms[0].RoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomUpdateRejectsInvalidWindow(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate time.Time
	}{
		{"ngày kết thúc trước ngày bắt đầu", start.AddDate(0, 0, -10)},
		{"ngày kết thúc trùng ngày bắt đầu", start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			svc := NewRoomService(RoomServiceOptions{DB: db})

			mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "status", "start_date", "version"}).
					AddRow(5, "101", constants.RoomStatusAvailable, start, 1))

			_, appErr := svc.Update(5, map[string]interface{}{
				"end_date": tt.endDate,
			})

			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomUpdateVersionConflict(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewRoomService(RoomServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT (.+) FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "status", "version"}).
			AddRow(5, "101", constants.RoomStatusAvailable, 2))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "rooms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, appErr := svc.Update(5, map[string]interface{}{"description": "tầng 1"})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeDBConflict, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
