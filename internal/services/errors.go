package services

import "errors"

// Sentinel errors shared by the service layer. Handlers map these onto the
// HTTP error envelope.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("operation not allowed for this account")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("resource already exists")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrUnauthenticated   = errors.New("invalid credentials")
)
