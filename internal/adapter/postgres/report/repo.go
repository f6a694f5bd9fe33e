// Package report implements the ReviewReport repository using PostgreSQL.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Repo provides review report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const reportColumns = `id, review_id, reporter_id, reason, description, status, resolved_by, resolved_at, created_at, updated_at`

const getByIDSQL = `
SELECT ` + reportColumns + `
FROM review_reports
WHERE id = $1`

const createSQL = `
INSERT INTO review_reports (id, review_id, reporter_id, reason, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + reportColumns

// The status guard makes the transition atomic: of two concurrent resolvers
// exactly one matches the pending row.
const resolveSQL = `
UPDATE review_reports
SET status = $2, resolved_by = $3, resolved_at = now(), updated_at = now()
WHERE id = $1 AND status = 'pending'
RETURNING ` + reportColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rep, err := scanReport(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "review_report", id)
	}
	return rep, nil
}

type reportRow struct {
	ID          uuid.UUID  `db:"id"`
	ReviewID    uuid.UUID  `db:"review_id"`
	ReporterID  uuid.UUID  `db:"reporter_id"`
	Reason      string     `db:"reason"`
	Description *string    `db:"description"`
	Status      string     `db:"status"`
	ResolvedBy  *uuid.UUID `db:"resolved_by"`
	ResolvedAt  *time.Time `db:"resolved_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// List returns reports oldest first, optionally narrowed by status.
func (r *Repo) List(ctx context.Context, status *domain.ReportStatus, limit, offset int) ([]domain.ReviewReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	l, o := postgres.Page(limit, offset)
	b := postgres.Builder().
		Select("id", "review_id", "reporter_id", "reason", "description", "status",
			"resolved_by", "resolved_at", "created_at", "updated_at").
		From("review_reports").
		OrderBy("created_at ASC", "id ASC").
		Limit(l).
		Offset(o)
	if status != nil {
		b = b.Where(sq.Eq{"status": string(*status)})
	}

	var rows []reportRow
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapQueryError(err, "review_report list")
	}

	reports := make([]domain.ReviewReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, domain.ReviewReport{
			ID:          row.ID,
			ReviewID:    row.ReviewID,
			ReporterID:  row.ReporterID,
			Reason:      domain.ReportReason(row.Reason),
			Description: row.Description,
			Status:      domain.ReportStatus(row.Status),
			ResolvedBy:  row.ResolvedBy,
			ResolvedAt:  row.ResolvedAt,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return reports, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pending report.
func (r *Repo) Create(ctx context.Context, rep *domain.ReviewReport) (*domain.ReviewReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanReport(q.QueryRow(ctx, createSQL,
		rep.ID, rep.ReviewID, rep.ReporterID, string(rep.Reason), rep.Description,
	))
	if err != nil {
		return nil, postgres.MapError(err, "review_report", rep.ID)
	}
	return created, nil
}

// Resolve moves a pending report to outcome. Returns a ConflictError if the
// report exists but was already resolved, domain.ErrNotFound if it does not.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, outcome domain.ReportStatus, resolvedBy uuid.UUID) (*domain.ReviewReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rep, err := scanReport(q.QueryRow(ctx, resolveSQL, id, string(outcome), resolvedBy))
	if err == nil {
		return rep, nil
	}
	mapped := postgres.MapError(err, "review_report", id)
	if !isNotFound(mapped) {
		return nil, mapped
	}

	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("review_report %s: %w", id,
		domain.NewConflictError("report already resolved as "+current.Status.String()))
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanReport(row pgx.Row) (*domain.ReviewReport, error) {
	var (
		rep            domain.ReviewReport
		reason, status string
	)
	if err := row.Scan(&rep.ID, &rep.ReviewID, &rep.ReporterID, &reason, &rep.Description, &status,
		&rep.ResolvedBy, &rep.ResolvedAt, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
		return nil, err
	}
	rep.Reason = domain.ReportReason(reason)
	rep.Status = domain.ReportStatus(status)
	return &rep, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
