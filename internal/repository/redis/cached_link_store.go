package redis

import (
	"context"

	"link-tracker/internal/domain"
)

// Compile-time interface check
var _ domain.LinkStore = (*CachedLinkStore)(nil)

// CachedLinkStore decorates a LinkStore with a short code lookup cache.
// Cached entries serve redirects only, so their counters may lag until
// the entry expires. Methods not overridden go straight to the store.
type CachedLinkStore struct {
	domain.LinkStore
	cache LinkCache
}

func NewCachedLinkStore(store domain.LinkStore, cache LinkCache) *CachedLinkStore {
	return &CachedLinkStore{LinkStore: store, cache: cache}
}

func (s *CachedLinkStore) Create(ctx context.Context, link *domain.TrackedLink) error {
	if err := s.LinkStore.Create(ctx, link); err != nil {
		return err
	}
	_ = s.cache.Set(ctx, link)
	return nil
}

// Update invalidates both the previous and the new short code.
func (s *CachedLinkStore) Update(ctx context.Context, link *domain.TrackedLink) error {
	codes := []string{link.ShortCode}
	if old, err := s.LinkStore.FindByID(ctx, link.ID); err == nil {
		codes = append(codes, old.ShortCode)
	}

	if err := s.LinkStore.Update(ctx, link); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, codes...)
	return nil
}

func (s *CachedLinkStore) Delete(ctx context.Context, id string) error {
	old, err := s.LinkStore.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.LinkStore.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, old.ShortCode)
	return nil
}

// FindByShortCode checks the cache first.
func (s *CachedLinkStore) FindByShortCode(ctx context.Context, code string) (*domain.TrackedLink, error) {
	if cached, err := s.cache.Get(ctx, code); err == nil && cached != nil {
		return cached, nil
	}

	link, err := s.LinkStore.FindByShortCode(ctx, code)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, link)
	return link, nil
}
