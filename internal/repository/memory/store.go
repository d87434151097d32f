package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"link-tracker/internal/domain"

	"github.com/samber/lo"
)

// Compile-time interface checks
var (
	_ domain.LinkStore     = (*Store)(nil)
	_ domain.ClickStore    = (*Store)(nil)
	_ domain.VisitorLedger = (*Store)(nil)
)

// Store keeps links, click events and visitor entries in process memory.
// A single mutex makes every operation atomic.
type Store struct {
	mu       sync.RWMutex
	links    map[string]*domain.TrackedLink
	byCode   map[string]string
	clicks   []domain.ClickEvent
	visitors map[string]map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		links:    make(map[string]*domain.TrackedLink),
		byCode:   make(map[string]string),
		visitors: make(map[string]map[string]struct{}),
	}
}

func (s *Store) Create(_ context.Context, link *domain.TrackedLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byCode[link.ShortCode]; taken {
		return domain.ErrShortCodeExists
	}
	stored := *link
	s.links[link.ID] = &stored
	s.byCode[link.ShortCode] = link.ID
	return nil
}

func (s *Store) Update(_ context.Context, link *domain.TrackedLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.links[link.ID]
	if !ok {
		return domain.ErrLinkNotFound
	}
	if owner, taken := s.byCode[link.ShortCode]; taken && owner != link.ID {
		return domain.ErrShortCodeExists
	}

	delete(s.byCode, current.ShortCode)
	s.byCode[link.ShortCode] = link.ID

	current.Title = link.Title
	current.DestinationURL = link.DestinationURL
	current.ShortCode = link.ShortCode
	current.Campaign = link.Campaign
	current.Status = link.Status
	current.UpdatedAt = link.UpdatedAt
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[id]
	if !ok {
		return domain.ErrLinkNotFound
	}
	delete(s.byCode, link.ShortCode)
	delete(s.links, id)
	delete(s.visitors, id)
	s.clicks = lo.Reject(s.clicks, func(e domain.ClickEvent, _ int) bool {
		return e.LinkID == id
	})
	return nil
}

func (s *Store) FindByID(_ context.Context, id string) (*domain.TrackedLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[id]
	if !ok {
		return nil, domain.ErrLinkNotFound
	}
	return clone(link), nil
}

func (s *Store) FindByShortCode(_ context.Context, code string) (*domain.TrackedLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byCode[code]
	if !ok {
		return nil, domain.ErrLinkNotFound
	}
	return clone(s.links[id]), nil
}

func (s *Store) IncrementCounters(_ context.Context, id string, clicks int64, firstVisit bool, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[id]
	if !ok {
		return domain.ErrLinkNotFound
	}
	link.TotalClicks += clicks
	if firstVisit {
		link.UniqueVisitors++
	}
	at = at.UTC()
	if link.LastClickedAt == nil || at.After(*link.LastClickedAt) {
		link.LastClickedAt = &at
	}
	return nil
}

func (s *Store) ListAll(_ context.Context, status domain.LinkStatus) ([]*domain.TrackedLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]*domain.TrackedLink, 0, len(s.links))
	for _, l := range s.links {
		if status == "" || l.Status == status {
			links = append(links, clone(l))
		}
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})
	return links, nil
}

func (s *Store) CountActive(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(lo.CountBy(lo.Values(s.links), func(l *domain.TrackedLink) bool {
		return l.IsActive()
	})), nil
}

// Exists is always true: the in-memory click log cannot be missing.
func (s *Store) Exists(context.Context) (bool, error) {
	return true, nil
}

func (s *Store) Append(_ context.Context, event *domain.ClickEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[event.LinkID]; !ok {
		return domain.ErrLinkNotFound
	}
	s.clicks = append(s.clicks, *event)
	return nil
}

func (s *Store) CountInWindow(_ context.Context, w domain.Window) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.inWindow(w))), nil
}

func (s *Store) CountDistinctIPsInWindow(_ context.Context, w domain.Window) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ips := lo.Uniq(lo.Map(s.inWindow(w), func(e domain.ClickEvent, _ int) string {
		return e.IPAddress
	}))
	return int64(len(ips)), nil
}

func (s *Store) Count(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.clicks)), nil
}

func (s *Store) Breakdown(_ context.Context, w domain.Window, d domain.Dimension) ([]domain.GroupCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := lo.CountValuesBy(s.inWindow(w), func(e domain.ClickEvent) string {
		return dimensionValue(e, d)
	})
	groups := make([]domain.GroupCount, 0, len(counts))
	for value, n := range counts {
		groups = append(groups, domain.GroupCount{Value: value, Count: int64(n)})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Value < groups[j].Value
	})
	return groups, nil
}

func (s *Store) MarkSeen(_ context.Context, linkID, ip string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen, ok := s.visitors[linkID]
	if !ok {
		seen = make(map[string]struct{})
		s.visitors[linkID] = seen
	}
	if _, dup := seen[ip]; dup {
		return false, nil
	}
	seen[ip] = struct{}{}
	return true, nil
}

func (s *Store) Unmark(_ context.Context, linkID, ip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.visitors[linkID], ip)
	return nil
}

func (s *Store) Forget(_ context.Context, linkID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.visitors, linkID)
	return nil
}

// inWindow must be called with the lock held.
func (s *Store) inWindow(w domain.Window) []domain.ClickEvent {
	return lo.Filter(s.clicks, func(e domain.ClickEvent, _ int) bool {
		return w.Contains(e.ClickTime)
	})
}

func dimensionValue(e domain.ClickEvent, d domain.Dimension) string {
	switch d {
	case domain.DimensionDevice:
		return e.DeviceType
	case domain.DimensionBrowser:
		return e.Browser
	case domain.DimensionOS:
		return e.OS
	case domain.DimensionSource:
		return e.TrafficSource
	case domain.DimensionCountry:
		return e.CountryCode
	default:
		return ""
	}
}

func clone(l *domain.TrackedLink) *domain.TrackedLink {
	c := *l
	if l.LastClickedAt != nil {
		t := *l.LastClickedAt
		c.LastClickedAt = &t
	}
	return &c
}
