package services

import (
	"testing"

	"hotelhub/constants"
	"hotelhub/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRow(id uint, username string, email string, hashedPassword string, status int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password", "role", "status"}).
		AddRow(id, username, email, hashedPassword, constants.RoleCustomer, status)
}

func TestLoginUnknownUserAndWrongPasswordSameMessage(t *testing.T) {
	hashed, err := HashPassword("dung-mat-khau")
	require.NoError(t, err)

	t.Run("user không tồn tại", func(t *testing.T) {
		db, mock := setupTestDB(t)
		svc := NewAuthService(db)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, appErr := svc.Login("khongcoai", "x")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeInvalidLogin, appErr.Code)
		assert.Equal(t, "Tên đăng nhập hoặc mật khẩu không hợp lệ", appErr.Message)
	})

	t.Run("sai mật khẩu", func(t *testing.T) {
		db, mock := setupTestDB(t)
		svc := NewAuthService(db)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(userRow(1, "nguyenvana", "a@example.com", hashed, constants.UserStatusActive))

		_, appErr := svc.Login("nguyenvana", "sai-mat-khau")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeInvalidLogin, appErr.Code)
		// Hai trường hợp trả về cùng một thông điệp, không lộ trường nào sai
		assert.Equal(t, "Tên đăng nhập hoặc mật khẩu không hợp lệ", appErr.Message)
	})
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := HashPassword("dung-mat-khau")
	require.NoError(t, err)

	db, mock := setupTestDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRow(1, "nguyenvana", "a@example.com", hashed, constants.UserStatusActive))

	user, appErr := svc.Login("nguyenvana", "dung-mat-khau")

	require.Nil(t, appErr)
	assert.Equal(t, uint(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	hashed, err := HashPassword("dung-mat-khau")
	require.NoError(t, err)

	db, mock := setupTestDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRow(1, "nguyenvana", "a@example.com", hashed, constants.UserStatusDeactive))

	_, appErr := svc.Login("nguyenvana", "dung-mat-khau")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeUnauthorized, appErr.Code)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, appErr := svc.Register("nguyenvana", "a@example.com", "matkhau6", "Nguyễn Văn A", "0900000000")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeUserExists, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
