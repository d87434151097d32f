package domain

//go:generate mockery --name=LinkStore --output=../mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=ClickStore --output=../mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=VisitorLedger --output=../mocks --outpkg=mocks --with-expecter

import (
	"context"
	"time"
)

// LinkStore persists tracked links and their denormalised counters.
// Implementations enforce short code uniqueness and report violations
// as ErrShortCodeExists.
type LinkStore interface {
	// Create inserts a new link.
	Create(ctx context.Context, link *TrackedLink) error

	// Update overwrites the editable fields of an existing link.
	// Counters are not touched.
	Update(ctx context.Context, link *TrackedLink) error

	// Delete removes a link together with its click events and visitor entries.
	Delete(ctx context.Context, id string) error

	// FindByID returns ErrLinkNotFound when no link has the id.
	FindByID(ctx context.Context, id string) (*TrackedLink, error)

	// FindByShortCode returns ErrLinkNotFound when the code is free.
	FindByShortCode(ctx context.Context, code string) (*TrackedLink, error)

	// IncrementCounters atomically adds clicks to total_clicks, adds one to
	// unique_visitors when firstVisit is set and advances last_clicked_at to at
	// if at is later than the stored value.
	IncrementCounters(ctx context.Context, id string, clicks int64, firstVisit bool, at time.Time) error

	// ListAll returns links with the given status, or every link when status is empty.
	ListAll(ctx context.Context, status LinkStatus) ([]*TrackedLink, error)

	// CountActive returns the number of active links.
	CountActive(ctx context.Context) (int64, error)
}

// ClickStore is the append-only click event log. It may be absent in
// deployments that only keep per-link counters.
type ClickStore interface {
	// Exists reports whether the backing table is present.
	Exists(ctx context.Context) (bool, error)

	Append(ctx context.Context, event *ClickEvent) error

	// CountInWindow counts events whose click time falls inside the window.
	CountInWindow(ctx context.Context, w Window) (int64, error)

	// CountDistinctIPsInWindow counts distinct IP addresses inside the window.
	CountDistinctIPsInWindow(ctx context.Context, w Window) (int64, error)

	// Count returns the number of stored events regardless of time.
	Count(ctx context.Context) (int64, error)

	// Breakdown groups events inside the window by a derived dimension,
	// ordered by count descending.
	Breakdown(ctx context.Context, w Window, d Dimension) ([]GroupCount, error)
}

// VisitorLedger remembers which IP addresses have ever clicked a link.
type VisitorLedger interface {
	// MarkSeen records ip for the link and reports whether this was its first visit.
	// The check and insert happen atomically.
	MarkSeen(ctx context.Context, linkID, ip string) (bool, error)

	// Unmark removes a single entry so the next visit from ip counts as first.
	Unmark(ctx context.Context, linkID, ip string) error

	// Forget drops every entry for the link.
	Forget(ctx context.Context, linkID string) error
}
