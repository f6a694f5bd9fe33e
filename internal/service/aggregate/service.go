// Package aggregate keeps the derived counters on items and discussions
// equal to a full re-aggregation of their fact rows.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

type aggregateRepo interface {
	LockItem(ctx context.Context, itemID uuid.UUID) error
	RecomputeItemRating(ctx context.Context, itemID uuid.UUID) (domain.RatingSummary, error)
	LockDiscussion(ctx context.Context, discussionID uuid.UUID) error
	RecomputeReplyCount(ctx context.Context, discussionID uuid.UUID) (int, error)
	ReconcileItems(ctx context.Context) (int64, error)
	ReconcileDiscussions(ctx context.Context) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Engine recomputes aggregates. Every method joins the transaction carried
// by ctx, so the recompute commits or rolls back with the write that
// triggered it.
type Engine struct {
	repo aggregateRepo
	tx   txManager
	log  *slog.Logger
}

// NewEngine creates a new aggregate engine.
func NewEngine(log *slog.Logger, repo aggregateRepo, tx txManager) *Engine {
	return &Engine{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "aggregate"),
	}
}

// ItemReviewsChanged re-derives rating and rating_count for itemID. A
// failure here must abort the caller's transaction.
func (e *Engine) ItemReviewsChanged(ctx context.Context, itemID uuid.UUID) (domain.RatingSummary, error) {
	var sum domain.RatingSummary
	err := e.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := e.repo.LockItem(ctx, itemID); err != nil {
			return fmt.Errorf("lock item: %w", err)
		}
		var err error
		sum, err = e.repo.RecomputeItemRating(ctx, itemID)
		if err != nil {
			return fmt.Errorf("recompute rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.RatingSummary{}, err
	}

	e.log.DebugContext(ctx, "item rating recomputed",
		slog.String("item_id", itemID.String()),
		slog.Float64("rating", sum.Rating),
		slog.Int("rating_count", sum.RatingCount),
	)
	return sum, nil
}

// DiscussionRepliesChanged re-derives reply_count for discussionID.
func (e *Engine) DiscussionRepliesChanged(ctx context.Context, discussionID uuid.UUID) (int, error) {
	var n int
	err := e.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := e.repo.LockDiscussion(ctx, discussionID); err != nil {
			return fmt.Errorf("lock discussion: %w", err)
		}
		var err error
		n, err = e.repo.RecomputeReplyCount(ctx, discussionID)
		if err != nil {
			return fmt.Errorf("recompute reply count: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	e.log.DebugContext(ctx, "reply count recomputed",
		slog.String("discussion_id", discussionID.String()),
		slog.Int("reply_count", n),
	)
	return n, nil
}

// ReconcileResult counts the rows a reconciliation pass corrected.
type ReconcileResult struct {
	Items       int64
	Discussions int64
}

// Reconcile repairs every stored aggregate that disagrees with its facts.
// A non-zero result means some write path skipped its recompute.
func (e *Engine) Reconcile(ctx context.Context) (ReconcileResult, error) {
	var res ReconcileResult
	err := e.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if res.Items, err = e.repo.ReconcileItems(ctx); err != nil {
			return fmt.Errorf("reconcile items: %w", err)
		}
		if res.Discussions, err = e.repo.ReconcileDiscussions(ctx); err != nil {
			return fmt.Errorf("reconcile discussions: %w", err)
		}
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	attrs := []any{slog.Int64("items", res.Items), slog.Int64("discussions", res.Discussions)}
	if res.Items > 0 || res.Discussions > 0 {
		e.log.WarnContext(ctx, "stale aggregates repaired", attrs...)
	} else {
		e.log.InfoContext(ctx, "aggregates consistent", attrs...)
	}
	return res, nil
}
