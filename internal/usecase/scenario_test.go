package usecase_test

import (
	"context"
	"testing"
	"time"

	"link-tracker/internal/domain"
	"link-tracker/internal/enrichment"
	"link-tracker/internal/repository/memory"
	"link-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestScenario_CreateClickAndReport walks a link from creation to the dashboard
func TestScenario_CreateClickAndReport(t *testing.T) {
	// Setup
	ctx := context.Background()
	store := memory.NewStore()
	logger := zap.NewNop()
	allocator := usecase.NewAllocator(store, logger)
	links := usecase.NewLinkService(store, store, allocator, logger)
	recorder := usecase.NewRecorder(store, store, store, enrichment.NewClassifier(nil), logger)
	aggregator := usecase.NewAggregator(store, store, logger)

	link, err := links.Create(ctx, usecase.CreateLinkParams{DestinationURL: "https://example.com"})
	require.NoError(t, err)
	require.Len(t, link.ShortCode, usecase.DefaultCodeLength)

	// Act
	now := time.Now().UTC()
	for _, ip := range []string{"198.51.100.1", "198.51.100.1", "198.51.100.2"} {
		recorder.Record(ctx, domain.Click{LinkID: link.ID, At: now, IPAddress: ip})
	}

	w, err := domain.ParseWindow("7", "", "", now)
	require.NoError(t, err)
	stats, err := aggregator.GetStats(ctx, w)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalClicks)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(1), stats.ActiveLinks)
	assert.Equal(t, "150%", domain.FormatPercent(stats.AvgConversion))

	stored, err := links.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.TotalClicks)
	assert.Equal(t, int64(2), stored.UniqueVisitors)
}

// TestScenario_DeletedLinkLeavesNoHistory tests that deleting a link removes its clicks from stats
func TestScenario_DeletedLinkLeavesNoHistory(t *testing.T) {
	// Setup
	ctx := context.Background()
	store := memory.NewStore()
	logger := zap.NewNop()
	links := usecase.NewLinkService(store, store, usecase.NewAllocator(store, logger), logger)
	recorder := usecase.NewRecorder(store, store, store, nil, logger)
	aggregator := usecase.NewAggregator(store, store, logger)
	now := time.Now().UTC()

	link, err := links.Create(ctx, usecase.CreateLinkParams{DestinationURL: "https://example.com"})
	require.NoError(t, err)
	recorder.Record(ctx, domain.Click{LinkID: link.ID, At: now, IPAddress: "198.51.100.1"})

	// Act
	require.NoError(t, links.Delete(ctx, link.ID))
	stats, err := aggregator.GetStats(ctx, domain.RollingWindow(30, now))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalClicks)
	assert.Equal(t, int64(0), stats.ActiveLinks)
	assert.Equal(t, 0.0, stats.AvgConversion)
}
