package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Redirects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "link_redirects_total",
		Help: "Redirect requests by outcome.",
	}, []string{"outcome"})
	ClicksRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "link_clicks_recorded_total",
		Help: "Clicks whose counters were updated.",
	})
	RecordFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "link_click_record_failures_total",
		Help: "Click recording failures by stage.",
	}, []string{"stage"})
	ClicksDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "link_clicks_dropped_total",
		Help: "Clicks that could not be queued for recording.",
	})
	AllocationAttempts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "short_code_allocation_attempts_total",
		Help: "Generated short code candidates checked for uniqueness.",
	})
	AllocationExhausted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "short_code_allocation_exhausted_total",
		Help: "Allocations that ran out of attempts.",
	})
	StatsSource = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_stats_source_total",
		Help: "Dashboard computations by data source.",
	}, []string{"source"})
	CacheHit = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_hit_total",
		Help: "Cache hits.",
	}, []string{"kind"})
	CacheMiss = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_miss_total",
		Help: "Cache misses.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(
		Redirects,
		ClicksRecorded,
		RecordFailures,
		ClicksDropped,
		AllocationAttempts,
		AllocationExhausted,
		StatsSource,
		CacheHit,
		CacheMiss,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
