package readinglist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// CreateList creates a list owned by the subject.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.ItemList, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := domain.ItemList{
		ID:          uuid.New(),
		OwnerID:     subject.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		IsPublic:    input.IsPublic,
	}
	if err := policy.Lists.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}

	created, err := s.lists.Create(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("readinglist.CreateList: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", subject.ID.String()),
		slog.String("list_id", created.ID.String()),
		slog.Bool("is_public", created.IsPublic),
	)
	return created, nil
}

// UpdateList edits a list the subject owns. A private list owned by someone
// else is reported as not found.
func (s *Service) UpdateList(ctx context.Context, input UpdateListInput) (*domain.ItemList, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.ItemList
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.lists.GetByID(ctx, input.ListID)
		if err != nil {
			return err
		}
		if err := policy.Lists.Check(ctx, subject, policy.ActionUpdate, *current); err != nil {
			return err
		}

		next := *current
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			next.Description = trimOrNil(input.Description)
		}
		if input.IsPublic != nil {
			next.IsPublic = *input.IsPublic
		}
		updated, err = s.lists.Update(ctx, &next)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("readinglist.UpdateList: %w", err)
	}

	s.log.InfoContext(ctx, "list updated",
		slog.String("user_id", subject.ID.String()),
		slog.String("list_id", updated.ID.String()),
	)
	return updated, nil
}

// DeleteList removes a list and its memberships.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.lists.GetByID(ctx, listID)
		if err != nil {
			return err
		}
		if err := policy.Lists.Check(ctx, subject, policy.ActionDelete, *current); err != nil {
			return err
		}
		return s.lists.Delete(ctx, listID)
	})
	if err != nil {
		return fmt.Errorf("readinglist.DeleteList: %w", err)
	}

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", subject.ID.String()),
		slog.String("list_id", listID.String()),
	)
	return nil
}

// GetList returns a list visible to the subject.
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (*domain.ItemList, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("readinglist.GetList: %w", err)
	}
	if err := policy.Lists.Check(ctx, policy.SubjectFromCtx(ctx), policy.ActionRead, *list); err != nil {
		return nil, fmt.Errorf("readinglist.GetList %s: %w", listID, err)
	}
	return list, nil
}

// ListLists returns an owner's lists. The owner sees all of them, anyone
// else only the public ones.
func (s *Service) ListLists(ctx context.Context, ownerID uuid.UUID) ([]domain.ItemList, error) {
	subject := policy.SubjectFromCtx(ctx)

	lists, err := s.lists.ListByOwner(ctx, ownerID, !subject.Owns(ownerID))
	if err != nil {
		return nil, fmt.Errorf("readinglist.ListLists: %w", err)
	}
	return policy.Filter(policy.Lists, subject, lists), nil
}
