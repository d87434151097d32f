package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"link-tracker/internal/domain"
	"link-tracker/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache is an in-process LinkCache for decorator tests.
type mapCache struct {
	mu          sync.Mutex
	entries     map[string]*domain.TrackedLink
	invalidated []string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]*domain.TrackedLink)}
}

func (c *mapCache) Get(_ context.Context, code string) (*domain.TrackedLink, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[code], nil
}

func (c *mapCache) Set(_ context.Context, link *domain.TrackedLink) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[link.ShortCode] = link
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, codes ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, code := range codes {
		delete(c.entries, code)
	}
	c.invalidated = append(c.invalidated, codes...)
	return nil
}

func testLink(code string) *domain.TrackedLink {
	return domain.NewTrackedLink("", "https://example.com/"+code, code, "", domain.StatusActive, time.Now())
}

func TestFindByShortCode_CacheMiss_LoadsAndCaches(t *testing.T) {
	// Setup
	ctx := context.Background()
	mockLinks := mocks.NewMockLinkStore(t)
	cache := newMapCache()
	store := NewCachedLinkStore(mockLinks, cache)
	link := testLink("abc123")

	// Mock expectations
	mockLinks.EXPECT().FindByShortCode(ctx, "abc123").Return(link, nil).Once()

	// Act
	first, err := store.FindByShortCode(ctx, "abc123")
	require.NoError(t, err)
	second, err := store.FindByShortCode(ctx, "abc123")
	require.NoError(t, err)

	// Assert
	assert.Equal(t, link.ID, first.ID)
	assert.Equal(t, link.ID, second.ID)
}

func TestFindByShortCode_NotFound_IsNotCached(t *testing.T) {
	// Setup
	ctx := context.Background()
	mockLinks := mocks.NewMockLinkStore(t)
	cache := newMapCache()
	store := NewCachedLinkStore(mockLinks, cache)

	// Mock expectations
	mockLinks.EXPECT().FindByShortCode(ctx, "nope").Return(nil, domain.ErrLinkNotFound).Twice()

	// Act
	_, err1 := store.FindByShortCode(ctx, "nope")
	_, err2 := store.FindByShortCode(ctx, "nope")

	// Assert
	assert.ErrorIs(t, err1, domain.ErrLinkNotFound)
	assert.ErrorIs(t, err2, domain.ErrLinkNotFound)
	assert.Empty(t, cache.entries)
}

func TestUpdate_CodeChange_InvalidatesOldAndNewCodes(t *testing.T) {
	// Setup
	ctx := context.Background()
	mockLinks := mocks.NewMockLinkStore(t)
	cache := newMapCache()
	store := NewCachedLinkStore(mockLinks, cache)
	old := testLink("old")
	_ = cache.Set(ctx, old)
	updated := *old
	updated.ShortCode = "new"

	// Mock expectations
	mockLinks.EXPECT().FindByID(ctx, old.ID).Return(old, nil)
	mockLinks.EXPECT().Update(ctx, &updated).Return(nil)

	// Act
	err := store.Update(ctx, &updated)

	// Assert
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"new", "old"}, cache.invalidated)
	assert.NotContains(t, cache.entries, "old")
}

func TestUpdate_StoreError_KeepsCache(t *testing.T) {
	// Setup
	ctx := context.Background()
	mockLinks := mocks.NewMockLinkStore(t)
	cache := newMapCache()
	store := NewCachedLinkStore(mockLinks, cache)
	link := testLink("taken")

	// Mock expectations
	mockLinks.EXPECT().FindByID(ctx, link.ID).Return(link, nil)
	mockLinks.EXPECT().Update(ctx, link).Return(domain.ErrShortCodeExists)

	// Act
	err := store.Update(ctx, link)

	// Assert
	assert.ErrorIs(t, err, domain.ErrShortCodeExists)
	assert.Empty(t, cache.invalidated)
}

func TestDelete_InvalidatesCode(t *testing.T) {
	// Setup
	ctx := context.Background()
	mockLinks := mocks.NewMockLinkStore(t)
	cache := newMapCache()
	store := NewCachedLinkStore(mockLinks, cache)
	link := testLink("bye")
	_ = cache.Set(ctx, link)

	// Mock expectations
	mockLinks.EXPECT().FindByID(ctx, link.ID).Return(link, nil)
	mockLinks.EXPECT().Delete(ctx, link.ID).Return(nil)

	// Act
	err := store.Delete(ctx, link.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"bye"}, cache.invalidated)
}

func TestDelete_MissingLink_ReturnsErrLinkNotFound(t *testing.T) {
	// Setup
	ctx := context.Background()
	mockLinks := mocks.NewMockLinkStore(t)
	store := NewCachedLinkStore(mockLinks, newMapCache())

	// Mock expectations
	mockLinks.EXPECT().FindByID(ctx, "ghost").Return(nil, domain.ErrLinkNotFound)

	// Act
	err := store.Delete(ctx, "ghost")

	// Assert
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestIncrementCounters_PassesThrough(t *testing.T) {
	// Setup
	ctx := context.Background()
	mockLinks := mocks.NewMockLinkStore(t)
	cache := newMapCache()
	store := NewCachedLinkStore(mockLinks, cache)
	at := time.Now()

	// Mock expectations
	mockLinks.EXPECT().IncrementCounters(ctx, "id-1", int64(1), true, at).Return(nil)

	// Act
	err := store.IncrementCounters(ctx, "id-1", 1, true, at)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cache.invalidated)
}

func TestNewLinkCache_NilClient_ReturnsNoop(t *testing.T) {
	cache := NewLinkCache(nil, time.Minute, nil)

	got, err := cache.Get(context.Background(), "abc")

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, cache.Set(context.Background(), testLink("abc")))
	assert.NoError(t, cache.Invalidate(context.Background(), "abc"))
}
