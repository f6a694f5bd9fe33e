package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/service/aggregate"
	"github.com/bookhive/bookhive-backend/pkg/ctxutil"
)

type reportLister interface {
	ListReports(ctx context.Context, status *domain.ReportStatus, limit, offset int) ([]domain.ReviewReport, error)
}

type requestLister interface {
	ListRequests(ctx context.Context, filter domain.ItemRequestFilter) ([]domain.ItemRequest, error)
}

type reconciler interface {
	Reconcile(ctx context.Context) (aggregate.ReconcileResult, error)
}

const defaultAdminPageSize = 50

// AdminHandler serves the operator moderation endpoints.
type AdminHandler struct {
	reports    reportLister
	requests   requestLister
	aggregates reconciler
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(reports reportLister, requests requestLister, aggregates reconciler, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reports:    reports,
		requests:   requests,
		aggregates: aggregates,
		log:        logger.With("handler", "admin"),
	}
}

// ReportResponse is the JSON shape of a review report.
type ReportResponse struct {
	ID          uuid.UUID  `json:"id"`
	ReviewID    uuid.UUID  `json:"review_id"`
	ReporterID  uuid.UUID  `json:"reporter_id"`
	Reason      string     `json:"reason"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	ResolvedBy  *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RequestResponse is the JSON shape of an item request.
type RequestResponse struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID uuid.UUID  `json:"requester_id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	ISBN        *string    `json:"isbn,omitempty"`
	Note        *string    `json:"note,omitempty"`
	Status      string     `json:"status"`
	AdminNote   *string    `json:"admin_note,omitempty"`
	ResolvedBy  *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ReconcileResponse reports how many stored aggregates were repaired.
type ReconcileResponse struct {
	Items       int64 `json:"items"`
	Discussions int64 `json:"discussions"`
}

// Reports lists review reports, optionally filtered by status.
// GET /admin/reports?status=pending&limit=50&offset=0
func (h *AdminHandler) Reports(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	var status *domain.ReportStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.ReportStatus(v)
		status = &s
	}

	reports, err := h.reports.ListReports(r.Context(), status, limit, offset)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]ReportResponse, len(reports))
	for i, rep := range reports {
		out[i] = ReportResponse{
			ID:          rep.ID,
			ReviewID:    rep.ReviewID,
			ReporterID:  rep.ReporterID,
			Reason:      rep.Reason.String(),
			Description: rep.Description,
			Status:      rep.Status.String(),
			ResolvedBy:  rep.ResolvedBy,
			ResolvedAt:  rep.ResolvedAt,
			CreatedAt:   rep.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Requests lists item requests, optionally filtered by status and requester.
// GET /admin/requests?status=pending&requester=<uuid>&limit=50&offset=0
func (h *AdminHandler) Requests(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	filter := domain.ItemRequestFilter{Limit: limit, Offset: offset}
	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		s := domain.RequestStatus(v)
		filter.Status = &s
	}
	if v := q.Get("requester"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("requester", "must be a UUID"))
			return
		}
		filter.RequesterID = &id
	}

	requests, err := h.requests.ListRequests(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]RequestResponse, len(requests))
	for i, req := range requests {
		out[i] = RequestResponse{
			ID:          req.ID,
			RequesterID: req.RequesterID,
			Title:       req.Title,
			Author:      req.Author,
			ISBN:        req.ISBN,
			Note:        req.Note,
			Status:      req.Status.String(),
			AdminNote:   req.AdminNote,
			ResolvedBy:  req.ResolvedBy,
			ResolvedAt:  req.ResolvedAt,
			CreatedAt:   req.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Reconcile repairs stale rating and reply-count aggregates.
// POST /admin/reconcile
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeServiceError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	res, err := h.aggregates.Reconcile(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "reconcile requested",
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		slog.Int64("items", res.Items),
		slog.Int64("discussions", res.Discussions),
	)
	writeJSON(w, http.StatusOK, ReconcileResponse{Items: res.Items, Discussions: res.Discussions})
}

func pageParams(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	limit, offset = defaultAdminPageSize, 0
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid input", Code: "VALIDATION",
				Fields: []FieldError{{Field: "limit", Message: "must be between 1 and 200"}},
			})
			return 0, 0, false
		}
		limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid input", Code: "VALIDATION",
				Fields: []FieldError{{Field: "offset", Message: "must be a non-negative integer"}},
			})
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}
