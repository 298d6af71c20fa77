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

func TestRefundRejectsNonCompleted(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewPaymentService(PaymentServiceOptions{DB: db})

	checkIn := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRow(1, 10, 5, constants.BookingStatusConfirmed, &checkIn, 1))

	_, appErr := svc.Refund(1, 2, 0)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidStatus, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefundRequiresExistingPayment(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewPaymentService(PaymentServiceOptions{DB: db})

	checkIn := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRow(1, 10, 5, constants.BookingStatusCompleted, &checkIn, 2))
	mock.ExpectQuery(`SELECT (.+) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, appErr := svc.Refund(1, 2, 0)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeDBNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefundWritesNegativeRowAndClawsBackPoints(t *testing.T) {
	db, mock := setupTestDB(t)
	svc := NewPaymentService(PaymentServiceOptions{DB: db})

	checkIn := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRow(1, 10, 5, constants.BookingStatusCompleted, &checkIn, 2))

	mock.ExpectQuery(`SELECT (.+) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payment_code", "booking_id", "amount", "payment_type", "status"}).
			AddRow(7, "PAY1", 1, 500.0, constants.PaymentTypeCash, constants.PaymentStatusPaid))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectQuery(`INSERT INTO "point_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	refund, appErr := svc.Refund(1, 2, 0)

	require.Nil(t, appErr)
	assert.Equal(t, -500.0, refund.Amount)
	assert.Equal(t, constants.PaymentStatusRefunded, refund.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
