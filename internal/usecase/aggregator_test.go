package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"link-tracker/internal/domain"
	"link-tracker/internal/mocks"
	"link-tracker/internal/repository/memory"
	"link-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var statsNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func activeLinks() []*domain.TrackedLink {
	return []*domain.TrackedLink{
		{ID: "a", Status: domain.StatusActive, TotalClicks: 30, UniqueVisitors: 10},
		{ID: "b", Status: domain.StatusActive, TotalClicks: 20, UniqueVisitors: 10},
		{ID: "c", Status: domain.StatusActive},
	}
}

// TestGetStats_ClickStoreHasData_UsesWindowedCounts tests the primary source
func TestGetStats_ClickStoreHasData_UsesWindowedCounts(t *testing.T) {
	// Setup
	mockLinks := mocks.NewMockLinkStore(t)
	mockClicks := mocks.NewMockClickStore(t)
	aggregator := usecase.NewAggregator(mockLinks, mockClicks, zap.NewNop())
	ctx := context.Background()
	w := domain.RollingWindow(30, statsNow)

	// Mock expectations
	mockClicks.EXPECT().Exists(ctx).Return(true, nil)
	mockClicks.EXPECT().CountInWindow(ctx, w).Return(int64(12), nil)
	mockClicks.EXPECT().CountDistinctIPsInWindow(ctx, w).Return(int64(8), nil)
	mockLinks.EXPECT().CountActive(ctx).Return(int64(3), nil)

	// Act
	stats, err := aggregator.GetStats(ctx, w)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalClicks)
	assert.Equal(t, int64(8), stats.UniqueVisitors)
	assert.Equal(t, int64(3), stats.ActiveLinks)
	assert.Equal(t, 150.0, stats.AvgConversion)
	assert.Equal(t, domain.SourceClickStore, stats.Source)
	mockLinks.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}

// TestGetStats_NoClickStore_SumsActiveLinkCounters tests the counter fallback
func TestGetStats_NoClickStore_SumsActiveLinkCounters(t *testing.T) {
	// Setup
	mockLinks := mocks.NewMockLinkStore(t)
	aggregator := usecase.NewAggregator(mockLinks, nil, zap.NewNop())
	ctx := context.Background()

	// Mock expectations
	mockLinks.EXPECT().ListAll(ctx, domain.StatusActive).Return(activeLinks(), nil)
	mockLinks.EXPECT().CountActive(ctx).Return(int64(3), nil)

	// Act
	stats, err := aggregator.GetStats(ctx, domain.RollingWindow(7, statsNow))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(50), stats.TotalClicks)
	assert.Equal(t, int64(20), stats.UniqueVisitors)
	assert.Equal(t, int64(3), stats.ActiveLinks)
	assert.Equal(t, 250.0, stats.AvgConversion)
	assert.Equal(t, "250%", domain.FormatPercent(stats.AvgConversion))
	assert.Equal(t, domain.SourceLinkCounters, stats.Source)
}

// TestGetStats_ZeroWindowedClicks_FallsBackIgnoringWindow tests the fallback on an empty window
func TestGetStats_ZeroWindowedClicks_FallsBackIgnoringWindow(t *testing.T) {
	// Setup
	mockLinks := mocks.NewMockLinkStore(t)
	mockClicks := mocks.NewMockClickStore(t)
	aggregator := usecase.NewAggregator(mockLinks, mockClicks, zap.NewNop())
	ctx := context.Background()
	w := domain.RollingWindow(7, statsNow)

	// Mock expectations
	mockClicks.EXPECT().Exists(ctx).Return(true, nil)
	mockClicks.EXPECT().CountInWindow(ctx, w).Return(int64(0), nil)
	mockClicks.EXPECT().CountDistinctIPsInWindow(ctx, w).Return(int64(0), nil)
	mockLinks.EXPECT().ListAll(ctx, domain.StatusActive).Return(activeLinks(), nil)
	mockLinks.EXPECT().CountActive(ctx).Return(int64(3), nil)

	// Act
	stats, err := aggregator.GetStats(ctx, w)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(50), stats.TotalClicks)
	assert.Equal(t, int64(20), stats.UniqueVisitors)
	assert.Equal(t, domain.SourceLinkCounters, stats.Source)
}

// TestGetStats_ClickTableMissing_FallsBack tests an existing store without its table
func TestGetStats_ClickTableMissing_FallsBack(t *testing.T) {
	// Setup
	mockLinks := mocks.NewMockLinkStore(t)
	mockClicks := mocks.NewMockClickStore(t)
	aggregator := usecase.NewAggregator(mockLinks, mockClicks, zap.NewNop())
	ctx := context.Background()

	// Mock expectations
	mockClicks.EXPECT().Exists(ctx).Return(false, nil)
	mockLinks.EXPECT().ListAll(ctx, domain.StatusActive).Return([]*domain.TrackedLink{}, nil)
	mockLinks.EXPECT().CountActive(ctx).Return(int64(0), nil)

	// Act
	stats, err := aggregator.GetStats(ctx, domain.RollingWindow(30, statsNow))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &domain.DashboardStats{Source: domain.SourceLinkCounters}, stats)
	mockClicks.AssertNotCalled(t, "CountInWindow", mock.Anything, mock.Anything)
}

// TestGetStats_StoreFailure_ReturnsStorageUnavailable tests that failures are not reported as zero data
func TestGetStats_StoreFailure_ReturnsStorageUnavailable(t *testing.T) {
	// Setup
	mockLinks := mocks.NewMockLinkStore(t)
	mockClicks := mocks.NewMockClickStore(t)
	aggregator := usecase.NewAggregator(mockLinks, mockClicks, zap.NewNop())
	ctx := context.Background()
	w := domain.RollingWindow(30, statsNow)

	// Mock expectations
	mockClicks.EXPECT().Exists(ctx).Return(true, nil)
	mockClicks.EXPECT().CountInWindow(ctx, w).Return(int64(0), errors.New("connection reset"))

	// Act
	stats, err := aggregator.GetStats(ctx, w)

	// Assert
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

// TestGetStats_DateRange_IncludesLastSecondOfDateTo tests day-granular range inclusivity
func TestGetStats_DateRange_IncludesLastSecondOfDateTo(t *testing.T) {
	// Setup
	ctx := context.Background()
	store := memory.NewStore()
	link := domain.NewTrackedLink("", "https://example.com", "abc123", "", domain.StatusActive, statsNow)
	require.NoError(t, store.Create(ctx, link))
	aggregator := usecase.NewAggregator(store, store, zap.NewNop())

	for _, e := range []domain.ClickEvent{
		{LinkID: link.ID, ClickTime: time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), IPAddress: "1.1.1.1"},
		{LinkID: link.ID, ClickTime: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), IPAddress: "2.2.2.2"},
	} {
		require.NoError(t, store.Append(ctx, &e))
	}

	w, err := domain.ParseWindow("", "2024-01-01", "2024-01-31", statsNow)
	require.NoError(t, err)

	// Act
	stats, err := aggregator.GetStats(ctx, w)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalClicks)
	assert.Equal(t, int64(1), stats.UniqueVisitors)
	assert.Equal(t, domain.SourceClickStore, stats.Source)
}

// TestDataCount_ReportsBothSources tests the diagnostics view
func TestDataCount_ReportsBothSources(t *testing.T) {
	// Setup
	mockLinks := mocks.NewMockLinkStore(t)
	mockClicks := mocks.NewMockClickStore(t)
	aggregator := usecase.NewAggregator(mockLinks, mockClicks, zap.NewNop())
	ctx := context.Background()
	w := domain.RollingWindow(30, statsNow)

	// Mock expectations
	mockLinks.EXPECT().CountActive(ctx).Return(int64(3), nil)
	mockClicks.EXPECT().Exists(ctx).Return(true, nil)
	mockClicks.EXPECT().Count(ctx).Return(int64(120), nil)
	mockClicks.EXPECT().CountInWindow(ctx, w).Return(int64(40), nil)
	mockLinks.EXPECT().ListAll(ctx, domain.StatusActive).Return(activeLinks(), nil)

	// Act
	dc, err := aggregator.DataCount(ctx, w)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), dc.TrackedLinks)
	assert.True(t, dc.ClickStoreExists)
	assert.Equal(t, int64(120), dc.TotalClickRecords)
	assert.Equal(t, int64(40), dc.FilteredClickRecords)
	assert.Equal(t, "last 30 days", dc.DateRange)
	assert.Equal(t, domain.CounterTotals{
		TotalLinks:        3,
		LinksWithClicks:   2,
		LinksWithVisitors: 2,
		TotalClicks:       50,
		UniqueVisitors:    20,
	}, dc.Counters)
}

// TestBreakdown_NoClickStore_ReturnsEmptyGroups tests breakdowns without an event log
func TestBreakdown_NoClickStore_ReturnsEmptyGroups(t *testing.T) {
	// Setup
	mockLinks := mocks.NewMockLinkStore(t)
	aggregator := usecase.NewAggregator(mockLinks, nil, zap.NewNop())

	// Act
	groups, err := aggregator.Breakdown(context.Background(), domain.RollingWindow(30, statsNow))

	// Assert
	require.NoError(t, err)
	assert.Len(t, groups, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		assert.Empty(t, groups[d])
	}
}
