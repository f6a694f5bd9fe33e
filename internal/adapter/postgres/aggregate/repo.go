// Package aggregate recomputes the denormalized counters on items and
// discussions from their fact rows.
//
// Callers run Lock* and Recompute* inside the transaction of the write that
// changed the facts. The lock is taken in its own statement so that, under
// READ COMMITTED, the recompute that follows reads a snapshot that includes
// every write committed by a previous lock holder.
package aggregate

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Repo runs aggregate recomputations against PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new aggregate repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const lockItemSQL = `SELECT id FROM items WHERE id = $1 FOR NO KEY UPDATE`

const lockDiscussionSQL = `SELECT id FROM discussions WHERE id = $1 FOR NO KEY UPDATE`

// updated_at is left alone: it tracks catalog edits, not review activity.
const recomputeItemSQL = `
UPDATE items
SET rating       = COALESCE((SELECT AVG(score)::float8 FROM reviews WHERE item_id = $1), 0),
	rating_count = (SELECT count(*) FROM reviews WHERE item_id = $1)
WHERE id = $1
RETURNING rating, rating_count`

const recomputeDiscussionSQL = `
UPDATE discussions
SET reply_count = (SELECT count(*) FROM discussion_replies WHERE discussion_id = $1)
WHERE id = $1
RETURNING reply_count`

const reconcileItemsSQL = `
WITH live AS (
	SELECT i.id,
	       COALESCE(AVG(r.score)::float8, 0) AS rating,
	       count(r.id)::int                  AS rating_count
	FROM items i
	LEFT JOIN reviews r ON r.item_id = i.id
	GROUP BY i.id
)
UPDATE items AS i
SET rating = live.rating, rating_count = live.rating_count
FROM live
WHERE i.id = live.id
  AND (i.rating_count <> live.rating_count OR abs(i.rating - live.rating) > 1e-9)`

const reconcileDiscussionsSQL = `
WITH live AS (
	SELECT d.id, count(r.id)::int AS reply_count
	FROM discussions d
	LEFT JOIN discussion_replies r ON r.discussion_id = d.id
	GROUP BY d.id
)
UPDATE discussions AS d
SET reply_count = live.reply_count
FROM live
WHERE d.id = live.id AND d.reply_count <> live.reply_count`

// ---------------------------------------------------------------------------
// Item rating
// ---------------------------------------------------------------------------

// LockItem takes the row lock that serializes recomputations for one item.
func (r *Repo) LockItem(ctx context.Context, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id uuid.UUID
	if err := q.QueryRow(ctx, lockItemSQL, itemID).Scan(&id); err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	return nil
}

// RecomputeItemRating re-derives rating and rating_count from the live
// reviews of the item.
func (r *Repo) RecomputeItemRating(ctx context.Context, itemID uuid.UUID) (domain.RatingSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sum := domain.RatingSummary{ItemID: itemID}
	if err := q.QueryRow(ctx, recomputeItemSQL, itemID).Scan(&sum.Rating, &sum.RatingCount); err != nil {
		return domain.RatingSummary{}, postgres.MapError(err, "item", itemID)
	}
	return sum, nil
}

// ---------------------------------------------------------------------------
// Discussion reply count
// ---------------------------------------------------------------------------

// LockDiscussion takes the row lock that serializes recomputations for one discussion.
func (r *Repo) LockDiscussion(ctx context.Context, discussionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id uuid.UUID
	if err := q.QueryRow(ctx, lockDiscussionSQL, discussionID).Scan(&id); err != nil {
		return postgres.MapError(err, "discussion", discussionID)
	}
	return nil
}

// RecomputeReplyCount re-derives reply_count from the live replies.
func (r *Repo) RecomputeReplyCount(ctx context.Context, discussionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, recomputeDiscussionSQL, discussionID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "discussion", discussionID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Reconciliation
// ---------------------------------------------------------------------------

// ReconcileItems repairs every item whose stored aggregates disagree with
// its reviews and returns how many rows were corrected.
func (r *Repo) ReconcileItems(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, reconcileItemsSQL)
	if err != nil {
		return 0, postgres.MapQueryError(err, "reconcile items")
	}
	return ct.RowsAffected(), nil
}

// ReconcileDiscussions is ReconcileItems for discussion reply counts.
func (r *Repo) ReconcileDiscussions(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, reconcileDiscussionsSQL)
	if err != nil {
		return 0, postgres.MapQueryError(err, "reconcile discussions")
	}
	return ct.RowsAffected(), nil
}
