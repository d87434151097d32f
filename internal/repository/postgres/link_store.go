package postgres

import (
	"context"
	"errors"
	"time"

	"link-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// LinkStore implements domain.LinkStore on PostgreSQL.
type LinkStore struct {
	pool *pgxpool.Pool
}

func NewLinkStore(pool *pgxpool.Pool) *LinkStore {
	return &LinkStore{pool: pool}
}

// Ensure LinkStore implements domain.LinkStore at compile time
var _ domain.LinkStore = (*LinkStore)(nil)

const linkColumns = `id, title, destination_url, short_code, campaign, status,
	total_clicks, unique_visitors, last_clicked_at, created_at, updated_at`

func (s *LinkStore) Create(ctx context.Context, link *domain.TrackedLink) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tracked_links (`+linkColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		link.ID,
		link.Title,
		link.DestinationURL,
		link.ShortCode,
		link.Campaign,
		string(link.Status),
		link.TotalClicks,
		link.UniqueVisitors,
		link.LastClickedAt,
		link.CreatedAt,
		link.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrShortCodeExists
	}
	return err
}

func (s *LinkStore) Update(ctx context.Context, link *domain.TrackedLink) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE tracked_links
		SET title = $1, destination_url = $2, short_code = $3, campaign = $4, status = $5, updated_at = $6
		WHERE id = $7`,
		link.Title,
		link.DestinationURL,
		link.ShortCode,
		link.Campaign,
		string(link.Status),
		link.UpdatedAt,
		link.ID,
	)
	if isUniqueViolation(err) {
		return domain.ErrShortCodeExists
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

// Delete relies on ON DELETE CASCADE to drop the link's clicks and visitors.
func (s *LinkStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tracked_links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

func (s *LinkStore) FindByID(ctx context.Context, id string) (*domain.TrackedLink, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+linkColumns+` FROM tracked_links WHERE id = $1`, id)
	return scanLink(row)
}

func (s *LinkStore) FindByShortCode(ctx context.Context, code string) (*domain.TrackedLink, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+linkColumns+` FROM tracked_links WHERE short_code = $1`, code)
	return scanLink(row)
}

func (s *LinkStore) IncrementCounters(ctx context.Context, id string, clicks int64, firstVisit bool, at time.Time) error {
	var visitors int64
	if firstVisit {
		visitors = 1
	}

	// GREATEST ignores NULL, so the first click sets last_clicked_at.
	tag, err := s.pool.Exec(ctx, `
		UPDATE tracked_links
		SET total_clicks = total_clicks + $1,
			unique_visitors = unique_visitors + $2,
			last_clicked_at = GREATEST(last_clicked_at, $3)
		WHERE id = $4`,
		clicks, visitors, at.UTC(), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

func (s *LinkStore) ListAll(ctx context.Context, status domain.LinkStatus) ([]*domain.TrackedLink, error) {
	query := `SELECT ` + linkColumns + ` FROM tracked_links`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.pool.Query(ctx, query, args...)
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
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tracked_links WHERE status = $1`, string(domain.StatusActive),
	).Scan(&n)
	return n, err
}

func scanLink(row pgx.Row) (*domain.TrackedLink, error) {
	var (
		link   domain.TrackedLink
		status string
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
		&link.LastClickedAt,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}

	link.Status = domain.LinkStatus(status)
	link.CreatedAt = link.CreatedAt.UTC()
	link.UpdatedAt = link.UpdatedAt.UTC()
	if link.LastClickedAt != nil {
		t := link.LastClickedAt.UTC()
		link.LastClickedAt = &t
	}
	return &link, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
