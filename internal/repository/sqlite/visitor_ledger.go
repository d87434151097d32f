package sqlite

import (
	"context"
	"database/sql"
	"time"

	"link-tracker/internal/domain"
)

// VisitorLedger implements domain.VisitorLedger on the link_visitors table.
type VisitorLedger struct {
	db  *sql.DB
	now func() time.Time
}

func NewVisitorLedger(db *sql.DB) *VisitorLedger {
	return &VisitorLedger{db: db, now: time.Now}
}

// Ensure VisitorLedger implements domain.VisitorLedger at compile time
var _ domain.VisitorLedger = (*VisitorLedger)(nil)

// MarkSeen inserts the pair unless it exists; one affected row means a first visit.
func (l *VisitorLedger) MarkSeen(ctx context.Context, linkID, ip string) (bool, error) {
	res, err := l.db.ExecContext(ctx, `
		INSERT INTO link_visitors (link_id, ip_address, first_seen_at)
		VALUES (?, ?, ?)
		ON CONFLICT (link_id, ip_address) DO NOTHING`,
		linkID, ip, l.now().Unix(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (l *VisitorLedger) Unmark(ctx context.Context, linkID, ip string) error {
	_, err := l.db.ExecContext(ctx, `DELETE FROM link_visitors WHERE link_id = ? AND ip_address = ?`, linkID, ip)
	return err
}

func (l *VisitorLedger) Forget(ctx context.Context, linkID string) error {
	_, err := l.db.ExecContext(ctx, `DELETE FROM link_visitors WHERE link_id = ?`, linkID)
	return err
}
