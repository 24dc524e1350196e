package services

import "errors"

// Failure taxonomy. Controllers translate these to HTTP statuses; nothing
// below the controller layer formats a response.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrEmptyReport        = errors.New("no orders for this period")
	ErrNameRequired       = errors.New("name is required")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrBadMonth           = errors.New("month must be between 1 and 12")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IsValidation reports whether err is bad user input rather than a missing
// record or an internal failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrNegativePrice) ||
		errors.Is(err, ErrBadMonth) ||
		errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrEmptyReport)
}
