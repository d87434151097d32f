package usecase

import (
	"context"

	"link-tracker/internal/domain"
	"link-tracker/internal/metrics"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Aggregator reconciles the click store and the per-link counters into
// dashboard statistics. It never writes.
//
// Precedence: the click store answers when it exists and holds at least one
// click inside the window. Otherwise the counters of all active links are
// summed. The counters are all-time totals, so the fallback ignores the window.
type Aggregator struct {
	links  domain.LinkStore
	clicks domain.ClickStore
	logger *zap.Logger
}

// NewAggregator creates an Aggregator. clicks may be nil.
func NewAggregator(links domain.LinkStore, clicks domain.ClickStore, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		links:  links,
		clicks: clicks,
		logger: logger,
	}
}

// GetStats computes dashboard totals for the window.
func (a *Aggregator) GetStats(ctx context.Context, w domain.Window) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{Source: domain.SourceClickStore}

	exists, err := a.clickStoreExists(ctx)
	if err != nil {
		return nil, err
	}

	if exists {
		if stats.TotalClicks, err = a.clicks.CountInWindow(ctx, w); err != nil {
			return nil, storageError(err)
		}
		if stats.UniqueVisitors, err = a.clicks.CountDistinctIPsInWindow(ctx, w); err != nil {
			return nil, storageError(err)
		}
	}

	if !exists || stats.TotalClicks == 0 {
		totals, err := a.counterTotals(ctx)
		if err != nil {
			return nil, err
		}
		stats.Source = domain.SourceLinkCounters
		stats.TotalClicks = totals.TotalClicks
		stats.UniqueVisitors = totals.UniqueVisitors
	}

	if stats.ActiveLinks, err = a.links.CountActive(ctx); err != nil {
		return nil, storageError(err)
	}

	stats.AvgConversion = domain.ConversionRate(stats.TotalClicks, stats.UniqueVisitors)
	metrics.StatsSource.WithLabelValues(string(stats.Source)).Inc()

	a.logger.Debug("dashboard stats computed",
		zap.String("window", w.String()),
		zap.String("source", string(stats.Source)),
		zap.Int64("total_clicks", stats.TotalClicks),
		zap.Int64("unique_visitors", stats.UniqueVisitors),
	)

	return stats, nil
}

// DataCount reports what each data source holds, for diagnosing dashboard numbers.
func (a *Aggregator) DataCount(ctx context.Context, w domain.Window) (*domain.DataCount, error) {
	dc := &domain.DataCount{DateRange: w.String()}

	var err error
	if dc.TrackedLinks, err = a.links.CountActive(ctx); err != nil {
		return nil, storageError(err)
	}

	if dc.ClickStoreExists, err = a.clickStoreExists(ctx); err != nil {
		return nil, err
	}
	if dc.ClickStoreExists {
		if dc.TotalClickRecords, err = a.clicks.Count(ctx); err != nil {
			return nil, storageError(err)
		}
		if dc.FilteredClickRecords, err = a.clicks.CountInWindow(ctx, w); err != nil {
			return nil, storageError(err)
		}
	}

	totals, err := a.counterTotals(ctx)
	if err != nil {
		return nil, err
	}
	dc.Counters = *totals

	return dc, nil
}

// Breakdown groups windowed clicks by every dimension. It is empty when
// there is no click store.
func (a *Aggregator) Breakdown(ctx context.Context, w domain.Window) (map[domain.Dimension][]domain.GroupCount, error) {
	result := make(map[domain.Dimension][]domain.GroupCount, len(domain.Dimensions))

	exists, err := a.clickStoreExists(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range domain.Dimensions {
		if !exists {
			result[d] = []domain.GroupCount{}
			continue
		}
		groups, err := a.clicks.Breakdown(ctx, w, d)
		if err != nil {
			return nil, storageError(err)
		}
		result[d] = groups
	}

	return result, nil
}

func (a *Aggregator) clickStoreExists(ctx context.Context) (bool, error) {
	if a.clicks == nil {
		return false, nil
	}
	exists, err := a.clicks.Exists(ctx)
	if err != nil {
		return false, storageError(err)
	}
	return exists, nil
}

func (a *Aggregator) counterTotals(ctx context.Context) (*domain.CounterTotals, error) {
	links, err := a.links.ListAll(ctx, domain.StatusActive)
	if err != nil {
		return nil, storageError(err)
	}

	return &domain.CounterTotals{
		TotalLinks: int64(len(links)),
		LinksWithClicks: int64(lo.CountBy(links, func(l *domain.TrackedLink) bool {
			return l.TotalClicks > 0
		})),
		LinksWithVisitors: int64(lo.CountBy(links, func(l *domain.TrackedLink) bool {
			return l.UniqueVisitors > 0
		})),
		TotalClicks: lo.SumBy(links, func(l *domain.TrackedLink) int64 {
			return l.TotalClicks
		}),
		UniqueVisitors: lo.SumBy(links, func(l *domain.TrackedLink) int64 {
			return l.UniqueVisitors
		}),
	}, nil
}
