// Package itemrequest implements the ItemRequest repository using PostgreSQL.
package itemrequest

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

// Repo provides item request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const requestColumns = `id, requester_id, title, author, isbn, note, status, admin_note, resolved_by, resolved_at, created_at, updated_at`

const getByIDSQL = `
SELECT ` + requestColumns + `
FROM item_requests
WHERE id = $1`

const createSQL = `
INSERT INTO item_requests (id, requester_id, title, author, isbn, note)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + requestColumns

const resolveSQL = `
UPDATE item_requests
SET status = $2, admin_note = $3, resolved_by = $4, resolved_at = now(), updated_at = now()
WHERE id = $1 AND status = 'pending'
RETURNING ` + requestColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ItemRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	req, err := scanRequest(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "item_request", id)
	}
	return req, nil
}

type requestRow struct {
	ID          uuid.UUID  `db:"id"`
	RequesterID uuid.UUID  `db:"requester_id"`
	Title       string     `db:"title"`
	Author      string     `db:"author"`
	ISBN        *string    `db:"isbn"`
	Note        *string    `db:"note"`
	Status      string     `db:"status"`
	AdminNote   *string    `db:"admin_note"`
	ResolvedBy  *uuid.UUID `db:"resolved_by"`
	ResolvedAt  *time.Time `db:"resolved_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// List returns requests newest first, narrowed by requester and status.
func (r *Repo) List(ctx context.Context, filter domain.ItemRequestFilter) ([]domain.ItemRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	l, o := postgres.Page(filter.Limit, filter.Offset)
	b := postgres.Builder().
		Select("id", "requester_id", "title", "author", "isbn", "note", "status",
			"admin_note", "resolved_by", "resolved_at", "created_at", "updated_at").
		From("item_requests").
		OrderBy("created_at DESC", "id ASC").
		Limit(l).
		Offset(o)
	if filter.RequesterID != nil {
		b = b.Where(sq.Eq{"requester_id": *filter.RequesterID})
	}
	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": string(*filter.Status)})
	}

	var rows []requestRow
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapQueryError(err, "item_request list")
	}

	out := make([]domain.ItemRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ItemRequest{
			ID:          row.ID,
			RequesterID: row.RequesterID,
			Title:       row.Title,
			Author:      row.Author,
			ISBN:        row.ISBN,
			Note:        row.Note,
			Status:      domain.RequestStatus(row.Status),
			AdminNote:   row.AdminNote,
			ResolvedBy:  row.ResolvedBy,
			ResolvedAt:  row.ResolvedAt,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pending request.
func (r *Repo) Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanRequest(q.QueryRow(ctx, createSQL,
		req.ID, req.RequesterID, req.Title, req.Author, req.ISBN, req.Note,
	))
	if err != nil {
		return nil, postgres.MapError(err, "item_request", req.ID)
	}
	return created, nil
}

// Resolve moves a pending request to outcome. A request that was already
// resolved yields a ConflictError.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, outcome domain.RequestStatus, adminNote *string, resolvedBy uuid.UUID) (*domain.ItemRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	req, err := scanRequest(q.QueryRow(ctx, resolveSQL, id, string(outcome), adminNote, resolvedBy))
	if err == nil {
		return req, nil
	}
	mapped := postgres.MapError(err, "item_request", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}

	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("item_request %s: %w", id,
		domain.NewConflictError("request already "+current.Status.String()))
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRequest(row pgx.Row) (*domain.ItemRequest, error) {
	var (
		req    domain.ItemRequest
		status string
	)
	if err := row.Scan(&req.ID, &req.RequesterID, &req.Title, &req.Author, &req.ISBN, &req.Note, &status,
		&req.AdminNote, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatus(status)
	return &req, nil
}
