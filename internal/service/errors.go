package service

import "errors"

var (
	// ErrNotAvailable is the conflict failure: the requested range overlaps a
	// pending or confirmed booking on the same guesthouse.
	ErrNotAvailable = errors.New("guesthouse not available for selected dates")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotOwner         = errors.New("no permission to cancel this booking")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrNotCancellable   = errors.New("booking can no longer be cancelled")
	ErrInvalidStatus    = errors.New("unsupported booking status")

	ErrSnapshotDisabled = errors.New("snapshot export is not configured")

	ErrInvalidCredentials = errors.New("incorrect username or password")
)
