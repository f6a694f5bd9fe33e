package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// GetItem returns a catalog item by ID.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetItem: %w", err)
	}
	return it, nil
}

// ListItems returns items matching the filter.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, domain.ItemFilter{
		Author:  input.Author,
		Genre:   input.Genre,
		SortBy:  input.SortBy,
		SortDir: input.SortDir,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.ListItems: %w", err)
	}
	return items, nil
}

// CreateItem adds an item to the catalog (admin only).
func (s *Service) CreateItem(ctx context.Context, input ItemInput) (*domain.Item, error) {
	subject := policy.SubjectFromCtx(ctx)
	row := input.toItem(uuid.New())
	if err := policy.Items.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.items.Create(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateItem: %w", isbnConflict(err))
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", subject.ID.String()),
		slog.String("item_id", created.ID.String()),
		slog.String("isbn", created.ISBN),
	)
	return created, nil
}

// UpdateItem rewrites the descriptive fields of an item (admin only).
// Rating and rating_count are never touched.
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, input ItemInput) (*domain.Item, error) {
	subject := policy.SubjectFromCtx(ctx)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Item
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.Items.Check(ctx, subject, policy.ActionUpdate, *current); err != nil {
			return err
		}
		row := input.toItem(id)
		updated, err = s.items.Update(ctx, &row)
		return isbnConflict(err)
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateItem: %w", err)
	}

	s.log.InfoContext(ctx, "item updated",
		slog.String("user_id", subject.ID.String()),
		slog.String("item_id", id.String()),
	)
	return updated, nil
}

// DeleteItem removes an item and, by cascade, its reviews, statuses and
// list memberships (admin only).
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	subject := policy.SubjectFromCtx(ctx)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.Items.Check(ctx, subject, policy.ActionDelete, *current); err != nil {
			return err
		}
		return s.items.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("catalog.DeleteItem: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", subject.ID.String()),
		slog.String("item_id", id.String()),
	)
	return nil
}

func isbnConflict(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewConflictError("an item with this ISBN already exists")
	}
	return err
}
