package models

import "errors"

// Core error taxonomy. Controllers map these to HTTP statuses; the services
// themselves never swallow an error.
var (
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrIndexOutOfRange      = errors.New("cart index out of range")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrAllocationExhausted  = errors.New("could not allocate a daily order number")
	ErrNotFound             = errors.New("not found")
	ErrDuplicateDailyNumber = errors.New("daily order number already taken")
)
