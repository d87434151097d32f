package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"link-tracker/internal/domain"
	"link-tracker/internal/usecase"
	"link-tracker/pkg/problemdetails"

	"go.uber.org/zap"
)

const DefaultLinkPrefix = "go"

// ClickPublisher hands redirect hits to the click recorder.
type ClickPublisher interface {
	Publish(ctx context.Context, click domain.Click) error
}

// Config holds the public-facing settings of the HTTP layer.
type Config struct {
	BaseURL    string
	LinkPrefix string

	// Ready reports whether storage is reachable. Nil means always ready.
	Ready func(ctx context.Context) error
}

// Handler handles HTTP requests for links, redirects and statistics
type Handler struct {
	links     *usecase.LinkService
	stats     *usecase.Aggregator
	publisher ClickPublisher
	cfg       Config
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandler creates a new Handler
func NewHandler(
	links *usecase.LinkService,
	stats *usecase.Aggregator,
	publisher ClickPublisher,
	cfg Config,
	logger *zap.Logger,
) *Handler {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.LinkPrefix = strings.Trim(cfg.LinkPrefix, "/")
	return &Handler{
		links:     links,
		stats:     stats,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// shortURL builds the public URL of a code.
func (h *Handler) shortURL(code string) string {
	if h.cfg.LinkPrefix == "" {
		return h.cfg.BaseURL + "/" + code
	}
	return h.cfg.BaseURL + "/" + h.cfg.LinkPrefix + "/" + code
}

// writeError maps domain errors to problem documents.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDestination):
		writeProblem(w, problemdetails.New(http.StatusBadRequest,
			problemdetails.TypeInvalidDestination, "Invalid Destination URL", err.Error()))
	case errors.Is(err, domain.ErrInvalidShortCode):
		writeProblem(w, problemdetails.New(http.StatusBadRequest,
			problemdetails.TypeInvalidShortCode, "Invalid Short Code", err.Error()))
	case errors.Is(err, domain.ErrInvalidStatus):
		writeProblem(w, problemdetails.New(http.StatusBadRequest,
			problemdetails.TypeInvalidStatus, "Invalid Status", err.Error()))
	case errors.Is(err, domain.ErrInvalidWindow):
		writeProblem(w, problemdetails.New(http.StatusBadRequest,
			problemdetails.TypeInvalidWindow, "Invalid Date Window", err.Error()))
	case errors.Is(err, domain.ErrLinkNotFound):
		writeProblem(w, problemdetails.New(http.StatusNotFound,
			problemdetails.TypeNotFound, "Not Found", "Link not found"))
	case errors.Is(err, domain.ErrStorageUnavailable):
		h.logger.Error("storage unavailable",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		w.Header().Set("Retry-After", "5")
		writeProblem(w, problemdetails.NewRetryable(http.StatusServiceUnavailable,
			problemdetails.TypeStorageUnavailable, "Service Unavailable", "Storage is temporarily unavailable"))
	case errors.Is(err, domain.ErrAllocationExhausted):
		h.logger.Error("short code allocation exhausted", zap.Error(err))
		writeProblem(w, problemdetails.New(http.StatusInternalServerError,
			problemdetails.TypeInternalError, "Internal Server Error", "Failed to generate short code"))
	default:
		h.logger.Error("unhandled error",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeProblem(w, problemdetails.New(http.StatusInternalServerError,
			problemdetails.TypeInternalError, "Internal Server Error", "Internal server error"))
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe)
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.cfg.Ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.cfg.Ready(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unavailable",
				Reason: "storage unavailable: " + err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}
