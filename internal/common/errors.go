// Package common defines shared constants and sentinel errors used across
// FlightBook components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Account errors.
	ErrDuplicateAccount = errors.New("account already exists")

	// Booking errors. A schedule conflict means the user already holds a
	// reservation whose first leg departs on the same day of the month.
	ErrScheduleConflict = errors.New("schedule conflict")
	ErrCapacityExceeded = errors.New("flight capacity exceeded")

	// Payment errors. ErrReservationNotFound covers both a missing
	// reservation and one that is already paid; the two are deliberately
	// indistinguishable to the caller.
	ErrReservationNotFound = errors.New("unpaid reservation not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
)
