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

const (
	defaultLimit = 20
	maxLimit     = 100
)

// CreateDiscussion opens a thread authored by the subject.
func (s *Service) CreateDiscussion(ctx context.Context, input CreateDiscussionInput) (*domain.Discussion, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	in := input.normalized()
	row := domain.Discussion{
		ID:       uuid.New(),
		AuthorID: subject.ID,
		Title:    in.Title,
		Body:     in.Body,
		Category: in.Category,
		Tags:     in.Tags,
	}
	if err := policy.Discussions.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}

	created, err := s.discussions.Create(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("discussion.CreateDiscussion: %w", err)
	}

	s.log.InfoContext(ctx, "discussion created",
		slog.String("user_id", subject.ID.String()),
		slog.String("discussion_id", created.ID.String()),
		slog.String("category", created.Category),
	)
	return created, nil
}

// UpdateDiscussion edits a thread the subject authored. reply_count is
// never written here.
func (s *Service) UpdateDiscussion(ctx context.Context, input UpdateDiscussionInput) (*domain.Discussion, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Discussion
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.discussions.GetByID(ctx, input.DiscussionID)
		if err != nil {
			return err
		}
		if err := policy.Discussions.Check(ctx, subject, policy.ActionUpdate, *current); err != nil {
			return err
		}

		next := *current
		if input.Title != nil {
			next.Title = strings.TrimSpace(*input.Title)
		}
		if input.Body != nil {
			next.Body = strings.TrimSpace(*input.Body)
		}
		if input.Category != nil {
			next.Category = strings.ToLower(strings.TrimSpace(*input.Category))
		}
		if input.Tags != nil {
			next.Tags = normalizeTags(input.Tags)
		}
		updated, err = s.discussions.Update(ctx, &next)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("discussion.UpdateDiscussion: %w", err)
	}

	s.log.InfoContext(ctx, "discussion updated",
		slog.String("user_id", subject.ID.String()),
		slog.String("discussion_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteDiscussion removes a thread the subject authored, with its replies.
func (s *Service) DeleteDiscussion(ctx context.Context, id uuid.UUID) error {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.discussions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.Discussions.Check(ctx, subject, policy.ActionDelete, *current); err != nil {
			return err
		}
		return s.discussions.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("discussion.DeleteDiscussion: %w", err)
	}

	s.log.InfoContext(ctx, "discussion deleted",
		slog.String("user_id", subject.ID.String()),
		slog.String("discussion_id", id.String()),
	)
	return nil
}

// GetDiscussion returns a thread.
func (s *Service) GetDiscussion(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	d, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("discussion.GetDiscussion: %w", err)
	}
	return d, nil
}

// ListDiscussions returns threads, newest first, optionally narrowed by
// category or tag.
func (s *Service) ListDiscussions(ctx context.Context, filter domain.DiscussionFilter) ([]domain.Discussion, error) {
	if filter.Offset < 0 {
		return nil, domain.NewValidationError("offset", "must be non-negative")
	}
	filter.Limit = clampLimit(filter.Limit)
	if filter.Category != nil {
		c := strings.ToLower(strings.TrimSpace(*filter.Category))
		filter.Category = &c
	}
	if filter.Tag != nil {
		tg := strings.ToLower(strings.TrimSpace(*filter.Tag))
		filter.Tag = &tg
	}

	list, err := s.discussions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("discussion.ListDiscussions: %w", err)
	}
	return policy.Filter(policy.Discussions, policy.SubjectFromCtx(ctx), list), nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	}
	return limit
}
