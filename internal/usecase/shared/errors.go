package shared

import "wanderbook/internal/pkg/errs"

// Usecase-level sentinels. Handlers translate these to HTTP statuses; the
// not-found checks always run before ownership checks so a missing booking
// never leaks whether it exists to a non-owner.
var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrResourceNotFound = errs.New("resource not found")
	ErrUserNotFound     = errs.New("user not found")

	ErrForbidden       = errs.New("operation not allowed for this user")
	ErrBookingConflict = errs.New("booking conflicts with an existing reservation")

	ErrInvalidCredentials = errs.New("invalid email or password")
)
