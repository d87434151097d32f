package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	httphandler "link-tracker/internal/delivery/http"
	"link-tracker/internal/domain"
	"link-tracker/internal/mocks"
	"link-tracker/internal/usecase"
	"link-tracker/pkg/problemdetails"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestDashboard_ClickEvents_ReportsWindowedTotals verifies the click store path
func TestDashboard_ClickEvents_ReportsWindowedTotals(t *testing.T) {
	// Setup
	router, store, _ := setupTestServer(t)
	ctx := context.Background()
	link := createLink(t, router, map[string]string{"destination_url": "https://example.com"})
	now := time.Now().UTC()
	for _, ip := range []string{"198.51.100.1", "198.51.100.1", "198.51.100.2"} {
		require.NoError(t, store.Append(ctx, &domain.ClickEvent{LinkID: link.ID, ClickTime: now.Add(-time.Hour), IPAddress: ip}))
	}
	require.NoError(t, store.Append(ctx, &domain.ClickEvent{LinkID: link.ID, ClickTime: now.AddDate(0, 0, -30), IPAddress: "198.51.100.3"}))

	// Act
	rr := doJSON(t, router, http.MethodGet, "/api/v1/stats/dashboard?days=7", nil)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(domain.SourceClickStore), rr.Header().Get("X-Stats-Source"))
	var resp httphandler.DashboardResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httphandler.DashboardResponse{
		TotalClicks:    3,
		UniqueVisitors: 2,
		ActiveLinks:    1,
		AvgConversion:  "150%",
	}, resp)
}

// TestDashboard_NoClickEvents_FallsBackToCounters verifies the counter fallback
func TestDashboard_NoClickEvents_FallsBackToCounters(t *testing.T) {
	// Setup
	router, store, _ := setupTestServer(t)
	ctx := context.Background()
	link := createLink(t, router, map[string]string{"destination_url": "https://example.com"})
	at := time.Now().AddDate(-1, 0, 0)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.IncrementCounters(ctx, link.ID, 1, i < 2, at))
	}

	// Act
	rr := doJSON(t, router, http.MethodGet, "/api/v1/stats/dashboard?days=7", nil)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(domain.SourceLinkCounters), rr.Header().Get("X-Stats-Source"))
	var resp httphandler.DashboardResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(5), resp.TotalClicks)
	assert.Equal(t, int64(2), resp.UniqueVisitors)
	assert.Equal(t, "250%", resp.AvgConversion)
}

// TestDashboard_InvalidWindow_Returns400 verifies window validation
func TestDashboard_InvalidWindow_Returns400(t *testing.T) {
	router, _, _ := setupTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"non numeric days", "?days=abc"},
		{"zero days", "?days=0"},
		{"days beyond a century", "?days=100000000"},
		{"malformed date", "?date_from=2024-13-01&date_to=2024-12-31"},
		{"reversed range", "?date_from=2024-03-10&date_to=2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodGet, "/api/v1/stats/dashboard"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, decodeProblem(t, rr).Type, problemdetails.TypeInvalidWindow)
		})
	}
}

// TestDashboard_StorageDown_Returns503 verifies that failures are distinct from zero activity
func TestDashboard_StorageDown_Returns503(t *testing.T) {
	// Setup
	mockLinks := mocks.NewMockLinkStore(t)
	mockClicks := mocks.NewMockClickStore(t)
	logger := zap.NewNop()
	links := usecase.NewLinkService(mockLinks, mocks.NewMockVisitorLedger(t), usecase.NewAllocator(mockLinks, logger), logger)
	handler := httphandler.NewHandler(links, usecase.NewAggregator(mockLinks, mockClicks, logger), newChanPublisher(),
		httphandler.Config{BaseURL: baseURL, LinkPrefix: "go"}, logger)
	router := httphandler.NewRouter(handler, logger, httphandler.NewRateLimiter(context.Background(), 0))

	// Mock expectations
	mockClicks.EXPECT().Exists(mock.Anything).Return(false, errors.New("database is locked"))

	// Act
	rr := doJSON(t, router, http.MethodGet, "/api/v1/stats/dashboard", nil)

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, decodeProblem(t, rr).Type, problemdetails.TypeStorageUnavailable)
}

// TestDataCount_ReportsBothSources verifies the diagnostics endpoint
func TestDataCount_ReportsBothSources(t *testing.T) {
	// Setup
	router, store, _ := setupTestServer(t)
	ctx := context.Background()
	link := createLink(t, router, map[string]string{"destination_url": "https://example.com"})
	require.NoError(t, store.IncrementCounters(ctx, link.ID, 1, true, time.Now()))
	require.NoError(t, store.Append(ctx, &domain.ClickEvent{LinkID: link.ID, ClickTime: time.Now().AddDate(0, 0, -60)}))

	// Act
	rr := doJSON(t, router, http.MethodGet, "/api/v1/stats/data-count?days=30", nil)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	var resp httphandler.DataCountResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.TrackedLinks)
	assert.True(t, resp.ClickStoreExists)
	assert.Equal(t, int64(1), resp.TotalClickRecords)
	assert.Equal(t, int64(0), resp.FilteredClickRecords)
	assert.Equal(t, "last 30 days", resp.DateRange)
	assert.Equal(t, int64(1), resp.Counters.TotalClicks)
	assert.Equal(t, int64(1), resp.Counters.LinksWithClicks)
}

// TestBreakdown_GroupsByDimension verifies the breakdown endpoint
func TestBreakdown_GroupsByDimension(t *testing.T) {
	// Setup
	router, store, _ := setupTestServer(t)
	ctx := context.Background()
	link := createLink(t, router, map[string]string{"destination_url": "https://example.com"})
	for _, device := range []string{"Mobile", "Desktop", "Mobile"} {
		require.NoError(t, store.Append(ctx, &domain.ClickEvent{
			LinkID:     link.ID,
			ClickTime:  time.Now().Add(-time.Minute),
			DeviceType: device,
		}))
	}

	// Act
	rr := doJSON(t, router, http.MethodGet, "/api/v1/stats/breakdown?days=1", nil)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	var resp httphandler.BreakdownResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []httphandler.GroupCountResponse{
		{Value: "Mobile", Count: 2},
		{Value: "Desktop", Count: 1},
	}, resp.Groups[string(domain.DimensionDevice)])
	assert.Len(t, resp.Groups, len(domain.Dimensions))
}
