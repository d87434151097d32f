package postgres

import (
	"context"
	"time"

	"link-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// VisitorLedger implements domain.VisitorLedger on the link_visitors table.
type VisitorLedger struct {
	pool *pgxpool.Pool
}

func NewVisitorLedger(pool *pgxpool.Pool) *VisitorLedger {
	return &VisitorLedger{pool: pool}
}

// Ensure VisitorLedger implements domain.VisitorLedger at compile time
var _ domain.VisitorLedger = (*VisitorLedger)(nil)

func (l *VisitorLedger) MarkSeen(ctx context.Context, linkID, ip string) (bool, error) {
	tag, err := l.pool.Exec(ctx, `
		INSERT INTO link_visitors (link_id, ip_address, first_seen_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (link_id, ip_address) DO NOTHING`,
		linkID, ip, time.Now().UTC(),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (l *VisitorLedger) Unmark(ctx context.Context, linkID, ip string) error {
	_, err := l.pool.Exec(ctx, `DELETE FROM link_visitors WHERE link_id = $1 AND ip_address = $2`, linkID, ip)
	return err
}

func (l *VisitorLedger) Forget(ctx context.Context, linkID string) error {
	_, err := l.pool.Exec(ctx, `DELETE FROM link_visitors WHERE link_id = $1`, linkID)
	return err
}
