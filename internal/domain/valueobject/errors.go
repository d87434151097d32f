package valueobject

import "errors"

var (
	ErrInvalidDestination = errors.New("invalid destination url")
	ErrInvalidCode        = errors.New("invalid short code format")
)
