package domain

import (
	"errors"

	"link-tracker/internal/domain/valueobject"
)

var (
	ErrLinkNotFound        = errors.New("link not found")
	ErrShortCodeExists     = errors.New("short code already exists")
	ErrAllocationExhausted = errors.New("short code allocation exhausted")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrInvalidWindow       = errors.New("invalid statistics window")
	ErrInvalidStatus       = errors.New("invalid link status")

	// Re-export value object errors for convenience.
	ErrInvalidDestination = valueobject.ErrInvalidDestination
	ErrInvalidShortCode   = valueobject.ErrInvalidCode
)
