package readinglist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// AddToList places an item on a list the subject owns. Adding an item that
// is already on the list succeeds without creating a second membership.
func (s *Service) AddToList(ctx context.Context, listID, itemID uuid.UUID) error {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	var added bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		list, err := s.lists.GetByID(ctx, listID)
		if err != nil {
			return err
		}
		row := policy.MembershipRow{List: *list, ItemID: itemID}
		if err := policy.Memberships.Check(ctx, subject, policy.ActionInsert, row); err != nil {
			return err
		}
		added, err = s.lists.AddItem(ctx, listID, itemID)
		return err
	})
	if err != nil {
		return fmt.Errorf("readinglist.AddToList: %w", err)
	}

	s.log.InfoContext(ctx, "item added to list",
		slog.String("user_id", subject.ID.String()),
		slog.String("list_id", listID.String()),
		slog.String("item_id", itemID.String()),
		slog.Bool("added", added),
	)
	return nil
}

// RemoveFromList takes an item off a list the subject owns. Removing an item
// that is not on the list succeeds.
func (s *Service) RemoveFromList(ctx context.Context, listID, itemID uuid.UUID) error {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	var removed bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		list, err := s.lists.GetByID(ctx, listID)
		if err != nil {
			return err
		}
		row := policy.MembershipRow{List: *list, ItemID: itemID}
		if err := policy.Memberships.Check(ctx, subject, policy.ActionDelete, row); err != nil {
			return err
		}
		removed, err = s.lists.RemoveItem(ctx, listID, itemID)
		return err
	})
	if err != nil {
		return fmt.Errorf("readinglist.RemoveFromList: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "item removed from list",
			slog.String("user_id", subject.ID.String()),
			slog.String("list_id", listID.String()),
			slog.String("item_id", itemID.String()),
		)
	}
	return nil
}

// ListItems returns the items on a list. Visibility follows the list.
func (s *Service) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("readinglist.ListItems: %w", err)
	}
	row := policy.MembershipRow{List: *list}
	if err := policy.Memberships.Check(ctx, policy.SubjectFromCtx(ctx), policy.ActionRead, row); err != nil {
		return nil, fmt.Errorf("readinglist.ListItems %s: %w", listID, err)
	}

	items, err := s.lists.ListItems(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("readinglist.ListItems: %w", err)
	}
	return items, nil
}
