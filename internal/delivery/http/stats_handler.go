package http

import (
	"net/http"

	"link-tracker/internal/domain"

	"github.com/samber/lo"
)

// DashboardResponse is the dashboard contract consumed by presentation layers
type DashboardResponse struct {
	TotalClicks    int64  `json:"total_clicks"`
	UniqueVisitors int64  `json:"unique_visitors"`
	ActiveLinks    int64  `json:"active_links"`
	AvgConversion  string `json:"avg_conversion"`
}

// CounterTotalsResponse summarises per-link counters on active links
type CounterTotalsResponse struct {
	TotalLinks        int64 `json:"total_links"`
	LinksWithClicks   int64 `json:"links_with_clicks"`
	LinksWithVisitors int64 `json:"links_with_visitors"`
	TotalClicks       int64 `json:"total_clicks"`
	UniqueVisitors    int64 `json:"unique_visitors"`
}

// DataCountResponse represents the response for GET /api/v1/stats/data-count
type DataCountResponse struct {
	TrackedLinks         int64                 `json:"tracked_links"`
	ClickStoreExists     bool                  `json:"click_store_exists"`
	TotalClickRecords    int64                 `json:"total_click_records"`
	FilteredClickRecords int64                 `json:"filtered_click_records"`
	DateRange            string                `json:"date_range"`
	Counters             CounterTotalsResponse `json:"counters"`
}

type GroupCountResponse struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// BreakdownResponse represents the response for GET /api/v1/stats/breakdown
type BreakdownResponse struct {
	DateRange string                          `json:"date_range"`
	Groups    map[string][]GroupCountResponse `json:"groups"`
}

// parseWindow reads days, date_from and date_to from the query string.
func (h *Handler) parseWindow(r *http.Request) (domain.Window, error) {
	q := r.URL.Query()
	return domain.ParseWindow(q.Get("days"), q.Get("date_from"), q.Get("date_to"), h.now())
}

// Dashboard handles GET /api/v1/stats/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	stats, err := h.stats.GetStats(r.Context(), window)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("X-Stats-Source", string(stats.Source))
	writeJSON(w, http.StatusOK, DashboardResponse{
		TotalClicks:    stats.TotalClicks,
		UniqueVisitors: stats.UniqueVisitors,
		ActiveLinks:    stats.ActiveLinks,
		AvgConversion:  domain.FormatPercent(stats.AvgConversion),
	})
}

// DataCount handles GET /api/v1/stats/data-count
func (h *Handler) DataCount(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dc, err := h.stats.DataCount(r.Context(), window)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DataCountResponse{
		TrackedLinks:         dc.TrackedLinks,
		ClickStoreExists:     dc.ClickStoreExists,
		TotalClickRecords:    dc.TotalClickRecords,
		FilteredClickRecords: dc.FilteredClickRecords,
		DateRange:            dc.DateRange,
		Counters: CounterTotalsResponse{
			TotalLinks:        dc.Counters.TotalLinks,
			LinksWithClicks:   dc.Counters.LinksWithClicks,
			LinksWithVisitors: dc.Counters.LinksWithVisitors,
			TotalClicks:       dc.Counters.TotalClicks,
			UniqueVisitors:    dc.Counters.UniqueVisitors,
		},
	})
}

// Breakdown handles GET /api/v1/stats/breakdown
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	groups, err := h.stats.Breakdown(r.Context(), window)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := BreakdownResponse{
		DateRange: window.String(),
		Groups:    make(map[string][]GroupCountResponse, len(groups)),
	}
	for d, counts := range groups {
		resp.Groups[string(d)] = lo.Map(counts, func(g domain.GroupCount, _ int) GroupCountResponse {
			return GroupCountResponse{Value: g.Value, Count: g.Count}
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
