package discussion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// AddReply posts a reply as the subject. The discussion's reply_count is
// recomputed in the same transaction.
func (s *Service) AddReply(ctx context.Context, discussionID uuid.UUID, input ReplyInput) (*domain.DiscussionReply, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := domain.DiscussionReply{
		ID:           uuid.New(),
		DiscussionID: discussionID,
		AuthorID:     subject.ID,
		Body:         strings.TrimSpace(input.Body),
	}
	if err := policy.Replies.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}

	var (
		created *domain.DiscussionReply
		count   int
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if created, err = s.discussions.CreateReply(ctx, &row); err != nil {
			return err
		}
		count, err = s.counter.DiscussionRepliesChanged(ctx, discussionID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("discussion.AddReply: %w", err)
	}

	s.log.InfoContext(ctx, "reply added",
		slog.String("user_id", subject.ID.String()),
		slog.String("discussion_id", discussionID.String()),
		slog.String("reply_id", created.ID.String()),
		slog.Int("reply_count", count),
	)
	return created, nil
}

// UpdateReply edits a reply the subject authored. The count is unaffected.
func (s *Service) UpdateReply(ctx context.Context, replyID uuid.UUID, input ReplyInput) (*domain.DiscussionReply, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.DiscussionReply
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.discussions.GetReply(ctx, replyID)
		if err != nil {
			return err
		}
		if err := policy.Replies.Check(ctx, subject, policy.ActionUpdate, *current); err != nil {
			return err
		}
		updated, err = s.discussions.UpdateReply(ctx, replyID, strings.TrimSpace(input.Body))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("discussion.UpdateReply: %w", err)
	}

	s.log.InfoContext(ctx, "reply updated",
		slog.String("user_id", subject.ID.String()),
		slog.String("reply_id", replyID.String()),
	)
	return updated, nil
}

// DeleteReply removes a reply the subject authored and recomputes the
// discussion's reply_count in the same transaction.
func (s *Service) DeleteReply(ctx context.Context, replyID uuid.UUID) error {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	var discussionID uuid.UUID
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.discussions.GetReply(ctx, replyID)
		if err != nil {
			return err
		}
		if err := policy.Replies.Check(ctx, subject, policy.ActionDelete, *current); err != nil {
			return err
		}
		if err := s.discussions.DeleteReply(ctx, replyID); err != nil {
			return err
		}
		discussionID = current.DiscussionID
		_, err = s.counter.DiscussionRepliesChanged(ctx, discussionID)
		return err
	})
	if err != nil {
		return fmt.Errorf("discussion.DeleteReply: %w", err)
	}

	s.log.InfoContext(ctx, "reply deleted",
		slog.String("user_id", subject.ID.String()),
		slog.String("discussion_id", discussionID.String()),
		slog.String("reply_id", replyID.String()),
	)
	return nil
}

// ListReplies returns a discussion's replies, oldest first.
func (s *Service) ListReplies(ctx context.Context, discussionID uuid.UUID, limit, offset int) ([]domain.DiscussionReply, error) {
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must be non-negative")
	}
	if _, err := s.discussions.GetByID(ctx, discussionID); err != nil {
		return nil, fmt.Errorf("discussion.ListReplies: %w", err)
	}

	replies, err := s.discussions.ListReplies(ctx, discussionID, clampLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("discussion.ListReplies: %w", err)
	}
	return policy.Filter(policy.Replies, policy.SubjectFromCtx(ctx), replies), nil
}
