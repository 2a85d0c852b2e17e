package store

import "errors"

// Sentinel errors surfaced to handlers, which map them onto HTTP status
// codes. Anything else coming out of the store is a storage failure and is
// reported as a server error.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrLineNotFound    = errors.New("cart item not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCartEmpty       = errors.New("cart is empty or missing")
	ErrNoUpdates       = errors.New("no status updates provided")
)
