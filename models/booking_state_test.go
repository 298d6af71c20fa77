package models

import (
	"testing"

	"hotelhub/constants"
	"hotelhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookingState(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   interface{}
	}{
		{"pending", constants.BookingStatusPending, &PendingState{}},
		{"confirmed", constants.BookingStatusConfirmed, &ConfirmedState{}},
		{"completed", constants.BookingStatusCompleted, &CompletedState{}},
		{"cancelled", constants.BookingStatusCancelled, &CancelledState{}},
		{"unknown treated as cancelled", 99, &CancelledState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, GetBookingState(tt.status))
		})
	}
}

func TestBookingTransitions(t *testing.T) {
	type action func(BookingState, *Booking) *errors.AppError

	confirm := func(s BookingState, b *Booking) *errors.AppError { return s.Confirm(b) }
	complete := func(s BookingState, b *Booking) *errors.AppError { return s.Complete(b) }
	cancel := func(s BookingState, b *Booking) *errors.AppError { return s.Cancel(b) }

	tests := []struct {
		name       string
		from       int
		act        action
		wantStatus int
		wantErr    bool
	}{
		{"pending confirm", constants.BookingStatusPending, confirm, constants.BookingStatusConfirmed, false},
		{"pending cancel", constants.BookingStatusPending, cancel, constants.BookingStatusCancelled, false},
		{"pending complete rejected", constants.BookingStatusPending, complete, 0, true},
		{"confirmed complete", constants.BookingStatusConfirmed, complete, constants.BookingStatusCompleted, false},
		{"confirmed confirm rejected", constants.BookingStatusConfirmed, confirm, 0, true},
		{"confirmed cancel rejected", constants.BookingStatusConfirmed, cancel, 0, true},
		{"completed cancel for refund", constants.BookingStatusCompleted, cancel, constants.BookingStatusCancelled, false},
		{"completed confirm rejected", constants.BookingStatusCompleted, confirm, 0, true},
		{"completed complete rejected", constants.BookingStatusCompleted, complete, 0, true},
		{"cancelled confirm rejected", constants.BookingStatusCancelled, confirm, 0, true},
		{"cancelled complete rejected", constants.BookingStatusCancelled, complete, 0, true},
		{"cancelled cancel rejected", constants.BookingStatusCancelled, cancel, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{ID: 1, Status: tt.from}
			state := GetBookingState(tt.from)

			appErr := tt.act(state, booking)

			if tt.wantErr {
				require.NotNil(t, appErr)
				assert.Equal(t, errors.ErrCodeInvalidStatus, appErr.Code)
				assert.Equal(t, tt.from, booking.Status, "trạng thái không được đổi khi transition bị từ chối")
				return
			}
			require.Nil(t, appErr)
			assert.Equal(t, tt.wantStatus, booking.Status)
		})
	}
}

func TestInvalidTransitionContext(t *testing.T) {
	booking := &Booking{ID: 42, Status: constants.BookingStatusCancelled}
	state := GetBookingState(booking.Status)

	appErr := state.Confirm(booking)

	require.NotNil(t, appErr)
	require.NotNil(t, appErr.Context)
	assert.Equal(t, uint(42), appErr.Context["bookingId"])
	assert.Equal(t, constants.BookingStatusCancelled, appErr.Context["status"])
}
