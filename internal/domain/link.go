package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LinkStatus is the publication state of a tracked link. Only active links
// redirect and count toward dashboard totals.
type LinkStatus string

const (
	StatusActive   LinkStatus = "active"
	StatusDraft    LinkStatus = "draft"
	StatusArchived LinkStatus = "archived"
)

// ParseLinkStatus converts user input into a LinkStatus.
// An empty string maps to StatusActive.
func ParseLinkStatus(s string) (LinkStatus, error) {
	switch LinkStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusActive:
		return StatusActive, nil
	case StatusDraft:
		return StatusDraft, nil
	case StatusArchived:
		return StatusArchived, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// TrackedLink is a short link with its denormalised click counters.
// The counters are only mutated through LinkStore.IncrementCounters.
type TrackedLink struct {
	ID             string
	Title          string
	DestinationURL string
	ShortCode      string
	Campaign       string
	Status         LinkStatus
	TotalClicks    int64
	UniqueVisitors int64
	LastClickedAt  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTrackedLink creates a link with a fresh UUIDv7 identifier and zeroed counters.
func NewTrackedLink(title, destination, shortCode, campaign string, status LinkStatus, now time.Time) *TrackedLink {
	now = now.UTC()
	return &TrackedLink{
		ID:             uuid.Must(uuid.NewV7()).String(),
		Title:          title,
		DestinationURL: destination,
		ShortCode:      shortCode,
		Campaign:       campaign,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsActive reports whether the link is live.
func (l *TrackedLink) IsActive() bool {
	return l.Status == StatusActive
}

// ConversionRate returns clicks per unique visitor as a percentage.
func (l *TrackedLink) ConversionRate() float64 {
	return ConversionRate(l.TotalClicks, l.UniqueVisitors)
}
