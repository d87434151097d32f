package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"link-tracker/internal/domain"
)

// ClickStore implements domain.ClickStore on the link_clicks table.
type ClickStore struct {
	db *sql.DB
}

func NewClickStore(db *sql.DB) *ClickStore {
	return &ClickStore{db: db}
}

// Ensure ClickStore implements domain.ClickStore at compile time
var _ domain.ClickStore = (*ClickStore)(nil)

var dimensionColumns = map[domain.Dimension]string{
	domain.DimensionDevice:  "device_type",
	domain.DimensionBrowser: "browser",
	domain.DimensionOS:      "os",
	domain.DimensionSource:  "traffic_source",
	domain.DimensionCountry: "country_code",
}

// Exists checks the schema so that databases migrated without the click
// table fall back to link counters.
func (s *ClickStore) Exists(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'link_clicks'`,
	).Scan(&n)
	return n > 0, err
}

func (s *ClickStore) Append(ctx context.Context, e *domain.ClickEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO link_clicks (
			link_id, click_time, ip_address, user_agent, referrer,
			device_type, browser, os, traffic_source, country_code
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.LinkID,
		e.ClickTime.Unix(),
		e.IPAddress,
		e.UserAgent,
		e.Referrer,
		e.DeviceType,
		e.Browser,
		e.OS,
		e.TrafficSource,
		e.CountryCode,
	)
	return err
}

func (s *ClickStore) CountInWindow(ctx context.Context, w domain.Window) (int64, error) {
	where, args := windowClause(w)
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM link_clicks WHERE `+where, args...).Scan(&n)
	return n, err
}

func (s *ClickStore) CountDistinctIPsInWindow(ctx context.Context, w domain.Window) (int64, error) {
	where, args := windowClause(w)
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT ip_address) FROM link_clicks WHERE `+where, args...).Scan(&n)
	return n, err
}

func (s *ClickStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM link_clicks`).Scan(&n)
	return n, err
}

func (s *ClickStore) Breakdown(ctx context.Context, w domain.Window, d domain.Dimension) ([]domain.GroupCount, error) {
	column, ok := dimensionColumns[d]
	if !ok {
		return nil, fmt.Errorf("unknown dimension %q", d)
	}
	where, args := windowClause(w)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+column+`, COUNT(*) AS n
		FROM link_clicks
		WHERE `+where+`
		GROUP BY `+column+`
		ORDER BY n DESC, `+column+` ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]domain.GroupCount, 0)
	for rows.Next() {
		var g domain.GroupCount
		if err := rows.Scan(&g.Value, &g.Count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// windowClause renders the window as a predicate on click_time.
func windowClause(w domain.Window) (string, []any) {
	since, until := w.Bounds()
	if until.IsZero() {
		return `click_time >= ?`, []any{since.Unix()}
	}
	return `click_time >= ? AND click_time < ?`, []any{since.Unix(), until.Unix()}
}
