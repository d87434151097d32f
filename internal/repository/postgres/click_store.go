package postgres

import (
	"context"
	"fmt"

	"link-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ClickStore implements domain.ClickStore on the link_clicks table.
type ClickStore struct {
	pool *pgxpool.Pool
}

func NewClickStore(pool *pgxpool.Pool) *ClickStore {
	return &ClickStore{pool: pool}
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

func (s *ClickStore) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = 'link_clicks'
		)`).Scan(&exists)
	return exists, err
}

func (s *ClickStore) Append(ctx context.Context, e *domain.ClickEvent) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO link_clicks (
			link_id, click_time, ip_address, user_agent, referrer,
			device_type, browser, os, traffic_source, country_code
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.LinkID,
		e.ClickTime.UTC(),
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
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM link_clicks WHERE `+where, args...).Scan(&n)
	return n, err
}

func (s *ClickStore) CountDistinctIPsInWindow(ctx context.Context, w domain.Window) (int64, error) {
	where, args := windowClause(w)
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT ip_address) FROM link_clicks WHERE `+where, args...).Scan(&n)
	return n, err
}

func (s *ClickStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM link_clicks`).Scan(&n)
	return n, err
}

func (s *ClickStore) Breakdown(ctx context.Context, w domain.Window, d domain.Dimension) ([]domain.GroupCount, error) {
	column, ok := dimensionColumns[d]
	if !ok {
		return nil, fmt.Errorf("unknown dimension %q", d)
	}
	where, args := windowClause(w)

	rows, err := s.pool.Query(ctx, `
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

func windowClause(w domain.Window) (string, []any) {
	since, until := w.Bounds()
	if until.IsZero() {
		return `click_time >= $1`, []any{since}
	}
	return `click_time >= $1 AND click_time < $2`, []any{since, until}
}
