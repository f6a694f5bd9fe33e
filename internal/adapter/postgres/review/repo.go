// Package review implements the Review repository using PostgreSQL.
package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const reviewColumns = `id, item_id, account_id, score, title, body, is_spoiler, is_flagged, created_at, updated_at`

const getByIDSQL = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE id = $1`

const listByItemSQL = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE item_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

// A second review for the same (item, account) fails on
// reviews_item_account_key; it never overwrites the existing row.
const createSQL = `
INSERT INTO reviews (id, item_id, account_id, score, title, body, is_spoiler)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + reviewColumns

const updateSQL = `
UPDATE reviews
SET score = $2, title = $3, body = $4, is_spoiler = $5, updated_at = now()
WHERE id = $1
RETURNING ` + reviewColumns

const setFlaggedSQL = `
UPDATE reviews
SET is_flagged = $2, updated_at = now()
WHERE id = $1`

const deleteSQL = `DELETE FROM reviews WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a review by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rv, err := scanReview(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	return rv, nil
}

// ListByItem returns an item's reviews, newest first.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	l, o := postgres.Page(limit, offset)
	rows, err := q.Query(ctx, listByItemSQL, itemID, l, o)
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows)
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	return reviews, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a review. Returns domain.ErrAlreadyExists if the account
// already reviewed the item and domain.ErrNotFound if the item is gone.
func (r *Repo) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanReview(q.QueryRow(ctx, createSQL,
		rv.ID, rv.ItemID, rv.AccountID, rv.Score, rv.Title, rv.Body, rv.IsSpoiler,
	))
	if err != nil {
		return nil, postgres.MapError(err, "review", rv.ID)
	}
	return created, nil
}

// Update overwrites the author-editable columns.
func (r *Repo) Update(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanReview(q.QueryRow(ctx, updateSQL, rv.ID, rv.Score, rv.Title, rv.Body, rv.IsSpoiler))
	if err != nil {
		return nil, postgres.MapError(err, "review", rv.ID)
	}
	return updated, nil
}

// SetFlagged sets the moderation flag.
func (r *Repo) SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, setFlaggedSQL, id, flagged)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a review; its reports cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanInto(row scanner) (domain.Review, error) {
	var (
		rv    domain.Review
		score int16
	)
	err := row.Scan(&rv.ID, &rv.ItemID, &rv.AccountID, &score, &rv.Title, &rv.Body,
		&rv.IsSpoiler, &rv.IsFlagged, &rv.CreatedAt, &rv.UpdatedAt)
	rv.Score = int(score)
	return rv, err
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	rv, err := scanInto(row)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func scanReviews(rows pgx.Rows) ([]domain.Review, error) {
	reviews := []domain.Review{}
	for rows.Next() {
		rv, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
