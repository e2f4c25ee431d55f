package domain

import (
	"time"
)

var (
	MessageSuccessCreateBooking = "booking created successfully"
	MessageSuccessGetBookings   = "success get bookings"
	MessageSuccessGetBooking    = "success get booking"
	MessageSuccessCreateLocker  = "locker created successfully"
	MessageSuccessGetLockers    = "success get lockers"
	MessageSuccessAssignLocker  = "locker assigned successfully"

	MessageFailedCreateBooking = "failed to create booking"
	MessageFailedGetBookings   = "failed to get bookings"
	MessageFailedGetBooking    = "failed to get booking"
	MessageFailedCreateLocker  = "failed to create locker"
	MessageFailedGetLockers    = "failed to get lockers"
	MessageFailedAssignLocker  = "failed to assign locker"

	ErrBookingNotFound = NewRuleError(ErrNotFound, "no booking found with given BookingID")
	ErrInvalidBooking  = NewRuleError(ErrInvalidReference, "no booking found with given BookingID")
	ErrLockerNotFound  = NewRuleError(ErrNotFound, "no locker found with given ID")
	ErrInvalidLocker   = NewRuleError(ErrInvalidReference, "no locker found with given ID")
	// ErrNoLockerForBooking is returned when both references exist on their
	// own but the locker is not linked to the booking.
	ErrNoLockerForBooking = NewRuleError(ErrInvalidReference, "no locker found with given BookingID")
	ErrLockerNotUpdated   = NewRuleError(ErrNoRowsChanged, "locker not updated")
)

type (
	CreateBookingRequest struct {
		MomentStart time.Time `json:"moment_start" validate:"required"`
		MomentEnd   time.Time `json:"moment_end" validate:"required,gtfield=MomentStart"`
	}

	BookingResponse struct {
		BookingID   uint      `json:"booking_id"`
		MomentStart time.Time `json:"moment_start"`
		MomentEnd   time.Time `json:"moment_end"`
	}

	// LockerRequest is used both to create a locker and to (re)assign it; a
	// nil BookingID leaves the locker free.
	LockerRequest struct {
		BookingID *uint `json:"booking_id" validate:"omitempty,min=1"`
	}

	LockerResponse struct {
		LockerID  uint  `json:"locker_id"`
		BookingID *uint `json:"booking_id"`
	}
)
