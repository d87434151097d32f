package redis

import (
	"context"

	"link-tracker/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const visitorKeyPrefix = "visitors:"

// VisitorLedger keeps one Redis set of IP addresses per link.
// SADD reports whether the member was new, which makes MarkSeen atomic.
type VisitorLedger struct {
	rdb *goredis.Client
}

func NewVisitorLedger(rdb *goredis.Client) *VisitorLedger {
	return &VisitorLedger{rdb: rdb}
}

// Ensure VisitorLedger implements domain.VisitorLedger at compile time
var _ domain.VisitorLedger = (*VisitorLedger)(nil)

func (l *VisitorLedger) MarkSeen(ctx context.Context, linkID, ip string) (bool, error) {
	added, err := l.rdb.SAdd(ctx, visitorKeyPrefix+linkID, ip).Result()
	if err != nil {
		return false, err
	}
	return added == 1, nil
}

func (l *VisitorLedger) Unmark(ctx context.Context, linkID, ip string) error {
	return l.rdb.SRem(ctx, visitorKeyPrefix+linkID, ip).Err()
}

func (l *VisitorLedger) Forget(ctx context.Context, linkID string) error {
	return l.rdb.Del(ctx, visitorKeyPrefix+linkID).Err()
}
