package domain

import (
	"math"
	"strconv"
)

// StatsSource records which store produced the dashboard totals.
type StatsSource string

const (
	SourceClickStore   StatsSource = "click_store"
	SourceLinkCounters StatsSource = "link_counters"
)

// DashboardStats is computed on every request and never cached.
type DashboardStats struct {
	TotalClicks    int64
	UniqueVisitors int64
	ActiveLinks    int64
	AvgConversion  float64
	Source         StatsSource
}

// ConversionRate returns clicks/visitors*100 rounded to two decimals,
// or 0 when there are no visitors.
func ConversionRate(clicks, visitors int64) float64 {
	if visitors <= 0 {
		return 0
	}
	return math.Round(float64(clicks)/float64(visitors)*100*100) / 100
}

// FormatPercent renders a rate the way the dashboard shows it, e.g. "150%" or "33.33%".
func FormatPercent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// CounterTotals summarises the denormalised counters on active links.
type CounterTotals struct {
	TotalLinks        int64
	LinksWithClicks   int64
	LinksWithVisitors int64
	TotalClicks       int64
	UniqueVisitors    int64
}

// DataCount describes what data the aggregator can see for a window.
type DataCount struct {
	TrackedLinks         int64
	ClickStoreExists     bool
	TotalClickRecords    int64
	FilteredClickRecords int64
	DateRange            string
	Counters             CounterTotals
}
