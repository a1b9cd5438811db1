package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomConflict        = errors.New("room already reserved for this time")
	ErrPastStartTime       = errors.New("reservation start time is in the past")
	ErrDurationTooShort    = errors.New("reservation shorter than minimum duration")
	ErrNotReservationOwner = errors.New("not the reservation owner")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
