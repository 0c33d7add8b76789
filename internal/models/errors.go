package models

import "errors"

// Business rules checked at construction time. The store only enforces
// uniqueness and foreign keys; everything else fails here with one of these.
var (
	ErrInvalidRole          = errors.New("role must be guest, host or admin")
	ErrNegativePrice        = errors.New("price per night cannot be negative")
	ErrInvalidDateRange     = errors.New("end date must be after start date")
	ErrInvalidBookingStatus = errors.New("status must be pending, confirmed or canceled")
	ErrNegativeAmount       = errors.New("payment amount cannot be negative")
	ErrInvalidPaymentMethod = errors.New("payment method must be credit_card, paypal or stripe")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrSelfMessage          = errors.New("sender and recipient must be different users")
)
