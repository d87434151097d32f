package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"link-tracker/internal/domain"
	"link-tracker/internal/domain/valueobject"

	"go.uber.org/zap"
)

// maxPersistAttempts bounds how often a lost race on the short code unique
// constraint is retried with a fresh code.
const maxPersistAttempts = 5

// CreateLinkParams holds the user input for a new link.
type CreateLinkParams struct {
	Title          string
	DestinationURL string
	ShortCode      string
	Campaign       string
	Status         string
}

// UpdateLinkParams holds optional edits; nil fields are left unchanged.
// An empty ShortCode asks for a newly generated code.
type UpdateLinkParams struct {
	Title          *string
	DestinationURL *string
	ShortCode      *string
	Campaign       *string
	Status         *string
}

// LinkService manages the lifecycle of tracked links.
type LinkService struct {
	links     domain.LinkStore
	visitors  domain.VisitorLedger
	allocator *Allocator
	logger    *zap.Logger
	now       func() time.Time
}

func NewLinkService(links domain.LinkStore, visitors domain.VisitorLedger, allocator *Allocator, logger *zap.Logger) *LinkService {
	return &LinkService{
		links:     links,
		visitors:  visitors,
		allocator: allocator,
		logger:    logger,
		now:       time.Now,
	}
}

// Create validates the input, allocates a short code and stores the link.
// The code is assigned before the link becomes visible.
func (s *LinkService) Create(ctx context.Context, p CreateLinkParams) (*domain.TrackedLink, error) {
	destination, err := valueobject.NewDestinationURL(p.DestinationURL)
	if err != nil {
		return nil, err
	}

	desired, err := desiredCode(p.ShortCode)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseLinkStatus(p.Status)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxPersistAttempts; attempt++ {
		code, err := s.allocator.Allocate(ctx, desired)
		if err != nil {
			return nil, err
		}

		link := domain.NewTrackedLink(
			strings.TrimSpace(p.Title),
			destination.String(),
			code,
			strings.TrimSpace(p.Campaign),
			status,
			s.now(),
		)

		err = s.links.Create(ctx, link)
		if err == nil {
			s.logger.Info("link created",
				zap.String("link_id", link.ID),
				zap.String("short_code", link.ShortCode),
			)
			return link, nil
		}
		if !errors.Is(err, domain.ErrShortCodeExists) {
			return nil, storageError(err)
		}

		// Another writer took the code between the check and the insert.
		s.logger.Warn("short code taken at insert, retrying",
			zap.String("short_code", code),
			zap.Int("attempt", attempt+1),
		)
		desired = ""
	}

	return nil, fmt.Errorf("%w: short code conflicts persisted after %d inserts",
		domain.ErrAllocationExhausted, maxPersistAttempts)
}

// Get returns a link by id.
func (s *LinkService) Get(ctx context.Context, id string) (*domain.TrackedLink, error) {
	link, err := s.links.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return link, nil
}

// Resolve returns the active link for a short code, for redirects.
// Draft and archived links resolve as not found.
func (s *LinkService) Resolve(ctx context.Context, code string) (*domain.TrackedLink, error) {
	link, err := s.links.FindByShortCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, storageError(err)
	}
	if !link.IsActive() {
		return nil, domain.ErrLinkNotFound
	}
	return link, nil
}

// List returns links with the given status, or all links when status is empty.
func (s *LinkService) List(ctx context.Context, status string) ([]*domain.TrackedLink, error) {
	var filter domain.LinkStatus
	if strings.TrimSpace(status) != "" {
		parsed, err := domain.ParseLinkStatus(status)
		if err != nil {
			return nil, err
		}
		filter = parsed
	}

	links, err := s.links.ListAll(ctx, filter)
	if err != nil {
		return nil, storageError(err)
	}
	return links, nil
}

// Update applies edits to a link. A changed short code goes through the
// allocator again, so a taken code silently becomes a generated one.
func (s *LinkService) Update(ctx context.Context, id string, p UpdateLinkParams) (*domain.TrackedLink, error) {
	link, err := s.links.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}

	if p.DestinationURL != nil {
		destination, err := valueobject.NewDestinationURL(*p.DestinationURL)
		if err != nil {
			return nil, err
		}
		link.DestinationURL = destination.String()
	}
	if p.Title != nil {
		link.Title = strings.TrimSpace(*p.Title)
	}
	if p.Campaign != nil {
		link.Campaign = strings.TrimSpace(*p.Campaign)
	}
	if p.Status != nil {
		status, err := domain.ParseLinkStatus(*p.Status)
		if err != nil {
			return nil, err
		}
		link.Status = status
	}

	var desired string
	recode := p.ShortCode != nil && strings.TrimSpace(*p.ShortCode) != link.ShortCode
	if recode {
		if desired, err = desiredCode(*p.ShortCode); err != nil {
			return nil, err
		}
	}

	link.UpdatedAt = s.now().UTC()

	for attempt := 0; attempt < maxPersistAttempts; attempt++ {
		if recode {
			code, err := s.allocator.AllocateFor(ctx, link.ID, desired)
			if err != nil {
				return nil, err
			}
			link.ShortCode = code
		}

		err := s.links.Update(ctx, link)
		if err == nil {
			s.logger.Info("link updated",
				zap.String("link_id", link.ID),
				zap.String("short_code", link.ShortCode),
			)
			return link, nil
		}
		if !recode || !errors.Is(err, domain.ErrShortCodeExists) {
			return nil, storageError(err)
		}
		desired = ""
	}

	return nil, fmt.Errorf("%w: short code conflicts persisted after %d updates",
		domain.ErrAllocationExhausted, maxPersistAttempts)
}

// Delete removes a link. Its click events go with it so that orphaned
// history never reaches the dashboard.
func (s *LinkService) Delete(ctx context.Context, id string) error {
	if err := s.links.Delete(ctx, id); err != nil {
		return storageError(err)
	}

	if err := s.visitors.Forget(ctx, id); err != nil {
		s.logger.Warn("failed to forget visitors of deleted link",
			zap.String("link_id", id),
			zap.Error(err),
		)
	}

	s.logger.Info("link deleted", zap.String("link_id", id))
	return nil
}

// desiredCode validates a user supplied short code. Empty input means
// "generate one" and is not an error.
func desiredCode(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	code, err := valueobject.NewShortCode(raw)
	if err != nil {
		return "", err
	}
	return code.String(), nil
}
