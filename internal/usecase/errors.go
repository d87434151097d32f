package usecase

import (
	"context"
	"errors"
	"fmt"

	"link-tracker/internal/domain"
)

// storageError marks unexpected store failures as retryable. Domain errors
// and context cancellation pass through unchanged.
func storageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrLinkNotFound),
		errors.Is(err, domain.ErrShortCodeExists),
		errors.Is(err, domain.ErrStorageUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
}
