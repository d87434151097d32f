package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"link-tracker/internal/domain"
	"link-tracker/internal/metrics"

	"go.uber.org/zap"
)

// ClickClassifier fills the derived attributes of a click event.
type ClickClassifier interface {
	Classify(e *domain.ClickEvent)
}

// Recorder turns redirect hits into click events and counter updates.
// It never returns an error to the caller: a failed record must not
// affect the redirect that produced it.
type Recorder struct {
	links      domain.LinkStore
	clicks     domain.ClickStore
	visitors   domain.VisitorLedger
	classifier ClickClassifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewRecorder creates a Recorder. clicks may be nil when no click log is kept;
// classifier may be nil to skip enrichment.
func NewRecorder(
	links domain.LinkStore,
	clicks domain.ClickStore,
	visitors domain.VisitorLedger,
	classifier ClickClassifier,
	logger *zap.Logger,
) *Recorder {
	return &Recorder{
		links:      links,
		clicks:     clicks,
		visitors:   visitors,
		classifier: classifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Record stores the click and updates the link's counters. Failures are
// logged and counted, then dropped.
func (r *Recorder) Record(ctx context.Context, click domain.Click) {
	if err := r.record(ctx, click); err != nil {
		r.logger.Error("failed to record click",
			zap.String("link_id", click.LinkID),
			zap.Error(err),
		)
	}
}

// HandlerName identifies the recorder as a click queue consumer.
func (r *Recorder) HandlerName() string {
	return "click_recorder"
}

// HandleClick records a click delivered by the click queue.
func (r *Recorder) HandleClick(ctx context.Context, click domain.Click) error {
	r.Record(ctx, click)
	return nil
}

func (r *Recorder) record(ctx context.Context, click domain.Click) error {
	if click.At.IsZero() {
		click.At = r.now()
	}
	at := click.At.UTC()

	var errs []error

	// The event append and the counter update are independent: counters are
	// updated even when the append fails.
	if err := r.appendEvent(ctx, click); err != nil {
		metrics.RecordFailures.WithLabelValues("append").Inc()
		errs = append(errs, fmt.Errorf("append click event: %w", err))
	}

	firstVisit, err := r.visitors.MarkSeen(ctx, click.LinkID, click.IPAddress)
	if err != nil {
		metrics.RecordFailures.WithLabelValues("dedup").Inc()
		errs = append(errs, fmt.Errorf("mark visitor: %w", err))
		firstVisit = false
	}

	if err := r.links.IncrementCounters(ctx, click.LinkID, 1, firstVisit, at); err != nil {
		metrics.RecordFailures.WithLabelValues("counters").Inc()
		errs = append(errs, fmt.Errorf("increment counters: %w", err))
		// An uncounted visitor must stay unseen, or the next click from it is never counted as unique.
		if firstVisit {
			if err := r.visitors.Unmark(ctx, click.LinkID, click.IPAddress); err != nil {
				errs = append(errs, fmt.Errorf("unmark visitor: %w", err))
			}
		}
	} else {
		metrics.ClicksRecorded.Inc()
	}

	return errors.Join(errs...)
}

func (r *Recorder) appendEvent(ctx context.Context, click domain.Click) error {
	if r.clicks == nil {
		return nil
	}
	exists, err := r.clicks.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	event := domain.NewClickEvent(click)
	if r.classifier != nil {
		r.classifier.Classify(event)
	}
	return r.clicks.Append(ctx, event)
}
