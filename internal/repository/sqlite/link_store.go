package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"link-tracker/internal/domain"
)

// LinkStore implements domain.LinkStore on SQLite. Timestamps are stored
// as unix seconds.
type LinkStore struct {
	db *sql.DB
}

func NewLinkStore(db *sql.DB) *LinkStore {
	return &LinkStore{db: db}
}

// Ensure LinkStore implements domain.LinkStore at compile time
var _ domain.LinkStore = (*LinkStore)(nil)

const linkColumns = `id, title, destination_url, short_code, campaign, status,
	total_clicks, unique_visitors, last_clicked_at, created_at, updated_at`

func (s *LinkStore) Create(ctx context.Context, link *domain.TrackedLink) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tracked_links (`+linkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		link.ID,
		link.Title,
		link.DestinationURL,
		link.ShortCode,
		link.Campaign,
		string(link.Status),
		link.TotalClicks,
		link.UniqueVisitors,
		nullableUnix(link.LastClickedAt),
		link.CreatedAt.Unix(),
		link.UpdatedAt.Unix(),
	)
	if isUniqueViolation(err) {
		return domain.ErrShortCodeExists
	}
	return err
}

func (s *LinkStore) Update(ctx context.Context, link *domain.TrackedLink) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tracked_links
		SET title = ?, destination_url = ?, short_code = ?, campaign = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		link.Title,
		link.DestinationURL,
		link.ShortCode,
		link.Campaign,
		string(link.Status),
		link.UpdatedAt.Unix(),
		link.ID,
	)
	if isUniqueViolation(err) {
		return domain.ErrShortCodeExists
	}
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete relies on ON DELETE CASCADE to drop the link's clicks and visitors.
func (s *LinkStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tracked_links WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *LinkStore) FindByID(ctx context.Context, id string) (*domain.TrackedLink, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM tracked_links WHERE id = ?`, id)
	return scanLink(row)
}

func (s *LinkStore) FindByShortCode(ctx context.Context, code string) (*domain.TrackedLink, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM tracked_links WHERE short_code = ?`, code)
	return scanLink(row)
}

func (s *LinkStore) IncrementCounters(ctx context.Context, id string, clicks int64, firstVisit bool, at time.Time) error {
	var visitors int64
	if firstVisit {
		visitors = 1
	}
	ts := at.Unix()

	res, err := s.db.ExecContext(ctx, `
		UPDATE tracked_links
		SET total_clicks = total_clicks + ?,
			unique_visitors = unique_visitors + ?,
			last_clicked_at = CASE
				WHEN last_clicked_at IS NULL OR last_clicked_at < ? THEN ?
				ELSE last_clicked_at
			END
		WHERE id = ?`,
		clicks, visitors, ts, ts, id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *LinkStore) ListAll(ctx context.Context, status domain.LinkStatus) ([]*domain.TrackedLink, error) {
	query := `SELECT ` + linkColumns + ` FROM tracked_links`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]*domain.TrackedLink, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (s *LinkStore) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tracked_links WHERE status = ?`, string(domain.StatusActive),
	).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLink(row scanner) (*domain.TrackedLink, error) {
	var (
		link          domain.TrackedLink
		status        string
		lastClickedAt sql.NullInt64
		createdAt     int64
		updatedAt     int64
	)
	err := row.Scan(
		&link.ID,
		&link.Title,
		&link.DestinationURL,
		&link.ShortCode,
		&link.Campaign,
		&status,
		&link.TotalClicks,
		&link.UniqueVisitors,
		&lastClickedAt,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}

	link.Status = domain.LinkStatus(status)
	link.CreatedAt = time.Unix(createdAt, 0).UTC()
	link.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	if lastClickedAt.Valid {
		t := time.Unix(lastClickedAt.Int64, 0).UTC()
		link.LastClickedAt = &t
	}
	return &link, nil
}

func nullableUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

// isUniqueViolation matches the SQLite error text for UNIQUE constraints.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}
