package services

import (
	"testing"

	"hotelhub/errors"
	"hotelhub/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTypeCreateAllowsZeroPrice(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewRoomTypeService(RoomTypeServiceOptions{DB: db})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "room_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	roomType := models.RoomType{Name: "Khuyến mãi", NightlyPrice: 0}
	appErr := svc.Create(&roomType)

	require.Nil(t, appErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomTypeCreateRejectsNegativePrice(t *testing.T) {
	db, _ := setupTestDB(t)
	svc := NewRoomTypeService(RoomTypeServiceOptions{DB: db})

	roomType := models.RoomType{Name: "Deluxe", NightlyPrice: -50}
	appErr := svc.Create(&roomType)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidAmount, appErr.Code)
}

func TestRoomTypeUpdateRejectsNegativePrice(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewRoomTypeService(RoomTypeServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT (.+) FROM "room_types"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "nightly_price"}).
			AddRow(1, "Deluxe", 100.0))

	_, appErr := svc.Update(1, map[string]interface{}{"nightly_price": -1.0})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidAmount, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
