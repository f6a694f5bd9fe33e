package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// DuplicateReviewReason is the conflict message for a second review of the
// same item by the same account.
const DuplicateReviewReason = "you already reviewed this title"

// SubmitReview stores the subject's review of an item. When it returns, the
// item's rating and rating_count already include the new review.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (*domain.Review, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := domain.Review{
		ID:        uuid.New(),
		ItemID:    input.ItemID,
		AccountID: subject.ID,
		Score:     input.Score,
		Title:     trimOrNil(input.Title),
		Body:      strings.TrimSpace(input.Body),
		IsSpoiler: input.IsSpoiler,
	}
	if err := policy.Reviews.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}

	var (
		created *domain.Review
		sum     domain.RatingSummary
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.reviews.Create(ctx, &row)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.NewConflictError(DuplicateReviewReason)
		}
		if err != nil {
			return err
		}
		sum, err = s.ratings.ItemReviewsChanged(ctx, created.ItemID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("review.SubmitReview: %w", err)
	}

	s.log.InfoContext(ctx, "review submitted",
		slog.String("user_id", subject.ID.String()),
		slog.String("item_id", created.ItemID.String()),
		slog.String("review_id", created.ID.String()),
		slog.Float64("rating", sum.Rating),
		slog.Int("rating_count", sum.RatingCount),
	)
	return created, nil
}

// UpdateReview edits the subject's own review and recomputes the item
// aggregates in the same transaction.
func (s *Service) UpdateReview(ctx context.Context, input UpdateReviewInput) (*domain.Review, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Review
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.reviews.GetByID(ctx, input.ReviewID)
		if err != nil {
			return err
		}
		if err := policy.Reviews.Check(ctx, subject, policy.ActionUpdate, *current); err != nil {
			return err
		}

		next := *current
		if input.Score != nil {
			next.Score = *input.Score
		}
		if input.Title != nil {
			next.Title = trimOrNil(input.Title)
		}
		if input.Body != nil {
			next.Body = strings.TrimSpace(*input.Body)
		}
		if input.IsSpoiler != nil {
			next.IsSpoiler = *input.IsSpoiler
		}

		if updated, err = s.reviews.Update(ctx, &next); err != nil {
			return err
		}
		_, err = s.ratings.ItemReviewsChanged(ctx, updated.ItemID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("review.UpdateReview: %w", err)
	}

	s.log.InfoContext(ctx, "review updated",
		slog.String("user_id", subject.ID.String()),
		slog.String("review_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteReview removes the subject's own review and recomputes the item
// aggregates in the same transaction.
func (s *Service) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	var itemID uuid.UUID
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.reviews.GetByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if err := policy.Reviews.Check(ctx, subject, policy.ActionDelete, *current); err != nil {
			return err
		}
		if err := s.reviews.Delete(ctx, reviewID); err != nil {
			return err
		}
		itemID = current.ItemID
		_, err = s.ratings.ItemReviewsChanged(ctx, itemID)
		return err
	})
	if err != nil {
		return fmt.Errorf("review.DeleteReview: %w", err)
	}

	s.log.InfoContext(ctx, "review deleted",
		slog.String("user_id", subject.ID.String()),
		slog.String("item_id", itemID.String()),
		slog.String("review_id", reviewID.String()),
	)
	return nil
}

// ListReviewsForItem returns an item's reviews, newest first.
func (s *Service) ListReviewsForItem(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	if limit < 0 || offset < 0 {
		return nil, domain.NewValidationError("limit", "must be non-negative")
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("review.ListReviewsForItem: %w", err)
	}

	reviews, err := s.reviews.ListByItem(ctx, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("review.ListReviewsForItem: %w", err)
	}
	return policy.Filter(policy.Reviews, policy.SubjectFromCtx(ctx), reviews), nil
}
