package repository

import "errors"

// Sentinel kinds for persistence errors.
var (
	ErrNotFound        = errors.New("document not found")
	ErrUnknownDriver   = errors.New("unknown store driver")
	ErrInvalidDocument = errors.New("invalid insight document")
	ErrClosed          = errors.New("store closed")
)
