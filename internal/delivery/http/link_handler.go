package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"slices"
	"time"

	"link-tracker/internal/domain"
	"link-tracker/internal/metrics"
	"link-tracker/internal/usecase"
	"link-tracker/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CreateLinkRequest represents the request body for creating a link
type CreateLinkRequest struct {
	Title          string `json:"title"`
	DestinationURL string `json:"destination_url"`
	ShortCode      string `json:"short_code"`
	Campaign       string `json:"campaign"`
	Status         string `json:"status"`
}

func (r CreateLinkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DestinationURL, validation.Required),
		validation.Field(&r.Title, validation.Length(0, 255)),
		validation.Field(&r.Campaign, validation.Length(0, 100)),
	)
}

// UpdateLinkRequest represents a partial update; omitted fields stay unchanged
type UpdateLinkRequest struct {
	Title          *string `json:"title"`
	DestinationURL *string `json:"destination_url"`
	ShortCode      *string `json:"short_code"`
	Campaign       *string `json:"campaign"`
	Status         *string `json:"status"`
}

func (r UpdateLinkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DestinationURL, validation.NilOrNotEmpty),
		validation.Field(&r.Title, validation.Length(0, 255)),
		validation.Field(&r.Campaign, validation.Length(0, 100)),
	)
}

// LinkResponse represents a tracked link with its counters
type LinkResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	DestinationURL string     `json:"destination_url"`
	ShortCode      string     `json:"short_code"`
	ShortURL       string     `json:"short_url"`
	Campaign       string     `json:"campaign"`
	Status         string     `json:"status"`
	TotalClicks    int64      `json:"total_clicks"`
	UniqueVisitors int64      `json:"unique_visitors"`
	ConversionRate string     `json:"conversion_rate"`
	LastClickedAt  *time.Time `json:"last_clicked_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// LinkListResponse represents the response for GET /api/v1/links
type LinkListResponse struct {
	Links []LinkResponse `json:"links"`
	Total int            `json:"total"`
}

func (h *Handler) toLinkResponse(l *domain.TrackedLink) LinkResponse {
	return LinkResponse{
		ID:             l.ID,
		Title:          l.Title,
		DestinationURL: l.DestinationURL,
		ShortCode:      l.ShortCode,
		ShortURL:       h.shortURL(l.ShortCode),
		Campaign:       l.Campaign,
		Status:         string(l.Status),
		TotalClicks:    l.TotalClicks,
		UniqueVisitors: l.UniqueVisitors,
		ConversionRate: domain.FormatPercent(l.ConversionRate()),
		LastClickedAt:  l.LastClickedAt,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// CreateLink handles POST /api/v1/links
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	link, err := h.links.Create(r.Context(), usecase.CreateLinkParams{
		Title:          req.Title,
		DestinationURL: req.DestinationURL,
		ShortCode:      req.ShortCode,
		Campaign:       req.Campaign,
		Status:         req.Status,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toLinkResponse(link))
}

// ListLinks handles GET /api/v1/links?status=
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LinkListResponse{
		Links: lo.Map(links, func(l *domain.TrackedLink, _ int) LinkResponse {
			return h.toLinkResponse(l)
		}),
		Total: len(links),
	})
}

// GetLink handles GET /api/v1/links/{id}
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.links.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toLinkResponse(link))
}

// UpdateLink handles PUT /api/v1/links/{id}
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var req UpdateLinkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	link, err := h.links.Update(r.Context(), chi.URLParam(r, "id"), usecase.UpdateLinkParams{
		Title:          req.Title,
		DestinationURL: req.DestinationURL,
		ShortCode:      req.ShortCode,
		Campaign:       req.Campaign,
		Status:         req.Status,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toLinkResponse(link))
}

// DeleteLink handles DELETE /api/v1/links/{id}
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	if err := h.links.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Redirect handles GET /{prefix}/{code}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	link, err := h.links.Resolve(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			metrics.Redirects.WithLabelValues("not_found").Inc()
			writeProblem(w, problemdetails.New(
				http.StatusNotFound,
				problemdetails.TypeNotFound,
				"Not Found",
				"Short link not found: "+code,
			))
			return
		}
		metrics.Redirects.WithLabelValues("error").Inc()
		h.writeError(w, r, err)
		return
	}

	// Capture request data before responding; r must not be used from the goroutine.
	click := domain.Click{
		LinkID:    link.ID,
		At:        h.now().UTC(),
		IPAddress: clientIP(r),
		UserAgent: r.Header.Get("User-Agent"),
		Referrer:  r.Header.Get("Referer"),
	}

	http.Redirect(w, r, link.DestinationURL, http.StatusFound)
	metrics.Redirects.WithLabelValues("found").Inc()

	go h.publishClick(click)
}

// publishClick queues a click; a failure loses the click, never the redirect.
func (h *Handler) publishClick(click domain.Click) {
	if err := h.publisher.Publish(context.Background(), click); err != nil {
		metrics.ClicksDropped.Inc()
		h.logger.Error("failed to publish click",
			zap.String("link_id", click.LinkID),
			zap.Error(err),
		)
	}
}

// decodeBody parses and validates a JSON body, writing a problem on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst validation.Validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON",
		))
		return false
	}

	if err := dst.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			writeProblem(w, problemdetails.NewValidation(toFieldErrors(verrs)))
			return false
		}
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			err.Error(),
		))
		return false
	}
	return true
}

func toFieldErrors(verrs validation.Errors) []problemdetails.FieldError {
	fields := lo.Keys(verrs)
	slices.Sort(fields)
	return lo.Map(fields, func(field string, _ int) problemdetails.FieldError {
		return problemdetails.FieldError{Field: field, Message: verrs[field].Error()}
	})
}

// clientIP strips the port from RemoteAddr; RealIP may have replaced it
// with a bare address already.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
