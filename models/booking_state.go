package models

import (
	"hotelhub/constants"
	"hotelhub/errors"
)

// BookingState định nghĩa interface cho các trạng thái booking.
// Mọi chuyển trạng thái chỉ đi qua đây: Pending -> Confirmed -> Completed,
// Pending -> Cancelled, Completed -> Cancelled (refund); các trạng thái khác
// là trạng thái kết thúc.
type BookingState interface {
	Confirm(booking *Booking) *errors.AppError
	Complete(booking *Booking) *errors.AppError
	Cancel(booking *Booking) *errors.AppError
}

func invalidTransition(booking *Booking, action string) *errors.AppError {
	return errors.NewAppErrorWithContext(
		errors.ErrCodeInvalidStatus,
		"Trạng thái booking không cho phép thao tác này",
		map[string]interface{}{
			"bookingId": booking.ID,
			"status":    booking.Status,
			"action":    action,
		},
	)
}

// PendingState trạng thái chờ nhận phòng
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) *errors.AppError {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Complete(booking *Booking) *errors.AppError {
	return invalidTransition(booking, "complete")
}

func (s *PendingState) Cancel(booking *Booking) *errors.AppError {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

// ConfirmedState trạng thái đã nhận phòng
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) *errors.AppError {
	return invalidTransition(booking, "confirm")
}

func (s *ConfirmedState) Complete(booking *Booking) *errors.AppError {
	booking.Status = constants.BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) Cancel(booking *Booking) *errors.AppError {
	return invalidTransition(booking, "cancel")
}

// CompletedState trạng thái hoàn thành; chỉ cho phép hủy qua refund
type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) *errors.AppError {
	return invalidTransition(booking, "confirm")
}

func (s *CompletedState) Complete(booking *Booking) *errors.AppError {
	return invalidTransition(booking, "complete")
}

func (s *CompletedState) Cancel(booking *Booking) *errors.AppError {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) *errors.AppError {
	return invalidTransition(booking, "confirm")
}

func (s *CancelledState) Complete(booking *Booking) *errors.AppError {
	return invalidTransition(booking, "complete")
}

func (s *CancelledState) Cancel(booking *Booking) *errors.AppError {
	return invalidTransition(booking, "cancel")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		// Trạng thái lạ coi như kết thúc, không cho thao tác
		return &CancelledState{}
	}
}
