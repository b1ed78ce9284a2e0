package service

import "errors"

// Domain errors surfaced to callers. Anything else bubbling out of a
// service is an infrastructure failure and maps to a generic 500.
var (
	ErrDuplicateCheckIn  = errors.New("already marked present today")
	ErrNoActiveSession   = errors.New("no check-in record found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out")
	ErrAccessDenied      = errors.New("access denied")
	ErrNotFound          = errors.New("not found")
)
