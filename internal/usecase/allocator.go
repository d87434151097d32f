package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"link-tracker/internal/domain"
	"link-tracker/internal/metrics"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const (
	// CodeAlphabet is 62 case-sensitive alphanumerics.
	CodeAlphabet       = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultCodeLength  = 6
	DefaultMaxAttempts = 100
)

// CodeGenerator returns a random string of size characters drawn from alphabet.
type CodeGenerator func(alphabet string, size int) (string, error)

// Allocator chooses short codes that no other link holds. It only reads
// from the store; the unique constraint at persist time is the final guard.
type Allocator struct {
	links       domain.LinkStore
	logger      *zap.Logger
	length      int
	maxAttempts int
	generate    CodeGenerator
}

type AllocatorOption func(*Allocator)

// WithCodeLength sets the length of generated codes.
func WithCodeLength(n int) AllocatorOption {
	return func(a *Allocator) {
		if n > 0 {
			a.length = n
		}
	}
}

// WithMaxAttempts caps how many generated candidates are checked.
func WithMaxAttempts(n int) AllocatorOption {
	return func(a *Allocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// WithGenerator replaces the random source.
func WithGenerator(g CodeGenerator) AllocatorOption {
	return func(a *Allocator) {
		if g != nil {
			a.generate = g
		}
	}
}

func NewAllocator(links domain.LinkStore, logger *zap.Logger, opts ...AllocatorOption) *Allocator {
	a := &Allocator{
		links:       links,
		logger:      logger,
		length:      DefaultCodeLength,
		maxAttempts: DefaultMaxAttempts,
		generate:    gonanoid.Generate,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Allocate returns a code for a new link. See AllocateFor.
func (a *Allocator) Allocate(ctx context.Context, desired string) (string, error) {
	return a.AllocateFor(ctx, "", desired)
}

// AllocateFor returns a code for the link with the given id. A non-empty
// desired code is used when it is free or already held by that link; when a
// different link holds it a random code is generated instead.
func (a *Allocator) AllocateFor(ctx context.Context, linkID, desired string) (string, error) {
	if desired = strings.TrimSpace(desired); desired != "" {
		owner, err := a.lookup(ctx, desired)
		if err != nil {
			return "", err
		}
		if owner == nil || (linkID != "" && owner.ID == linkID) {
			return desired, nil
		}
		a.logger.Debug("desired short code taken, generating one",
			zap.String("short_code", desired),
			zap.String("owner_id", owner.ID),
		)
	}

	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := a.generate(CodeAlphabet, a.length)
		if err != nil {
			return "", fmt.Errorf("failed to generate short code: %w", err)
		}
		metrics.AllocationAttempts.Inc()

		owner, err := a.lookup(ctx, code)
		if err != nil {
			return "", err
		}
		if owner == nil {
			return code, nil
		}
	}

	metrics.AllocationExhausted.Inc()
	a.logger.Error("short code allocation exhausted",
		zap.Int("max_attempts", a.maxAttempts),
		zap.Int("length", a.length),
	)
	return "", fmt.Errorf("%w after %d attempts", domain.ErrAllocationExhausted, a.maxAttempts)
}

// lookup returns the link holding code, or nil when the code is free.
func (a *Allocator) lookup(ctx context.Context, code string) (*domain.TrackedLink, error) {
	link, err := a.links.FindByShortCode(ctx, code)
	if err == nil {
		return link, nil
	}
	if errors.Is(err, domain.ErrLinkNotFound) {
		return nil, nil
	}
	return nil, storageError(err)
}
