package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultWindowDays = 30
	DateLayout        = "2006-01-02"

	// MaxWindowDays keeps rolling windows inside the range every store can represent.
	MaxWindowDays = 36500
)

// Window selects the clicks that count toward statistics. A rolling window
// covers the last Days days up to now with no upper bound; a date range covers
// From through To inclusive at day granularity. All bounds are UTC.
type Window struct {
	Days int
	From time.Time
	To   time.Time
	Now  time.Time
}

// RollingWindow selects clicks at or after now minus days.
func RollingWindow(days int, now time.Time) Window {
	return Window{Days: days, Now: now.UTC()}
}

// DateRangeWindow selects clicks whose calendar date lies between from and to.
func DateRangeWindow(from, to, now time.Time) Window {
	return Window{
		From: startOfDay(from),
		To:   startOfDay(to),
		Now:  now.UTC(),
	}
}

// IsRange reports whether the window is an explicit date range.
func (w Window) IsRange() bool {
	return !w.From.IsZero()
}

// Bounds returns the half-open interval [since, until).
// A zero until means the window has no upper bound.
func (w Window) Bounds() (since, until time.Time) {
	if w.IsRange() {
		return w.From, w.To.AddDate(0, 0, 1)
	}
	return w.Now.AddDate(0, 0, -w.Days), time.Time{}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	since, until := w.Bounds()
	t = t.UTC()
	if t.Before(since) {
		return false
	}
	return until.IsZero() || t.Before(until)
}

func (w Window) String() string {
	if w.IsRange() {
		return w.From.Format(DateLayout) + " to " + w.To.Format(DateLayout)
	}
	return fmt.Sprintf("last %d days", w.Days)
}

// ParseWindow builds a Window from request parameters. The date range wins
// when both dates are present; otherwise a rolling window of days (default 30)
// is used. Malformed input yields ErrInvalidWindow rather than a default.
func ParseWindow(days, dateFrom, dateTo string, now time.Time) (Window, error) {
	n := DefaultWindowDays
	if days = strings.TrimSpace(days); days != "" {
		v, err := strconv.Atoi(days)
		if err != nil || v <= 0 {
			return Window{}, fmt.Errorf("%w: days must be a positive integer, got %q", ErrInvalidWindow, days)
		}
		if v > MaxWindowDays {
			return Window{}, fmt.Errorf("%w: days must be at most %d, got %d", ErrInvalidWindow, MaxWindowDays, v)
		}
		n = v
	}

	from, err := parseDate("date_from", dateFrom)
	if err != nil {
		return Window{}, err
	}
	to, err := parseDate("date_to", dateTo)
	if err != nil {
		return Window{}, err
	}

	if from.IsZero() || to.IsZero() {
		return RollingWindow(n, now), nil
	}
	if from.After(to) {
		return Window{}, fmt.Errorf("%w: date_from %s is after date_to %s",
			ErrInvalidWindow, from.Format(DateLayout), to.Format(DateLayout))
	}
	return DateRangeWindow(from, to, now), nil
}

func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", ErrInvalidWindow, field, value)
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
