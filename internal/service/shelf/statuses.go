package shelf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// SetItemStatus upserts the subject's (item, kind) status. Calling it again
// for the same kind replaces the dates and rating; the kind never changes
// as a side effect of a date.
//
// When the live schema lacks the date columns the write is retried without
// them, unless the caller asked for dates, which cannot be stored until the
// pending migration is applied.
func (s *Service) SetItemStatus(ctx context.Context, input SetItemStatusInput) (*domain.ItemStatus, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := domain.ItemStatus{
		ID:             uuid.New(),
		AccountID:      subject.ID,
		ItemID:         input.ItemID,
		Kind:           input.Kind,
		StartDate:      dateOnly(input.StartDate),
		FinishDate:     dateOnly(input.FinishDate),
		PersonalRating: input.PersonalRating,
	}
	if err := policy.Statuses.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}

	saved, err := s.upsert(ctx, &row, s.statuses.Upsert)
	if errors.Is(err, domain.ErrSchemaDrift) {
		s.drift.Observe(ctx, err)
		if row.HasDates() {
			return nil, fmt.Errorf("shelf.SetItemStatus: reading dates are unavailable until a pending schema migration is applied: %w",
				domain.ErrTransientUnavailable)
		}
		s.log.WarnContext(ctx, "item status saved without date columns",
			slog.String("user_id", subject.ID.String()),
			slog.String("item_id", row.ItemID.String()),
		)
		saved, err = s.upsert(ctx, &row, s.statuses.UpsertLegacy)
	} else if err == nil {
		s.drift.Observe(ctx, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("shelf.SetItemStatus: %w", err)
	}

	s.log.InfoContext(ctx, "item status set",
		slog.String("user_id", subject.ID.String()),
		slog.String("item_id", saved.ItemID.String()),
		slog.String("kind", saved.Kind.String()),
	)
	return saved, nil
}

// upsert runs one write in its own transaction. A drift failure aborts the
// transaction, so a fallback write needs a fresh one.
func (s *Service) upsert(
	ctx context.Context,
	row *domain.ItemStatus,
	write func(context.Context, *domain.ItemStatus) (*domain.ItemStatus, error),
) (*domain.ItemStatus, error) {
	var saved *domain.ItemStatus
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = write(ctx, row)
		return err
	})
	return saved, err
}

// ClearItemStatus removes the subject's (item, kind) status. Clearing a
// status that is not set succeeds.
func (s *Service) ClearItemStatus(ctx context.Context, itemID uuid.UUID, kind domain.StatusKind) error {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return domain.NewValidationError("kind", "must be one of: want reading completed favorite")
	}

	row := domain.ItemStatus{AccountID: subject.ID, ItemID: itemID, Kind: kind}
	if err := policy.Statuses.Check(ctx, subject, policy.ActionDelete, row); err != nil {
		return err
	}

	removed, err := s.statuses.Delete(ctx, subject.ID, itemID, kind)
	if err != nil {
		return fmt.Errorf("shelf.ClearItemStatus: %w", err)
	}
	if removed {
		s.log.InfoContext(ctx, "item status cleared",
			slog.String("user_id", subject.ID.String()),
			slog.String("item_id", itemID.String()),
			slog.String("kind", kind.String()),
		)
	}
	return nil
}

// ListStatuses returns the subject's statuses, optionally of one kind.
func (s *Service) ListStatuses(ctx context.Context, kind *domain.StatusKind) ([]domain.ItemStatus, error) {
	if kind != nil && !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be one of: want reading completed favorite")
	}
	out, err := s.list(ctx, nil, kind)
	if err != nil {
		return nil, fmt.Errorf("shelf.ListStatuses: %w", err)
	}
	return out, nil
}

// GetStatuses returns every status the subject holds on one item.
func (s *Service) GetStatuses(ctx context.Context, itemID uuid.UUID) ([]domain.ItemStatus, error) {
	out, err := s.list(ctx, &itemID, nil)
	if err != nil {
		return nil, fmt.Errorf("shelf.GetStatuses: %w", err)
	}
	return out, nil
}

func (s *Service) list(ctx context.Context, itemID *uuid.UUID, kind *domain.StatusKind) ([]domain.ItemStatus, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.statuses.ListByAccount(ctx, subject.ID, itemID, kind)
	if errors.Is(err, domain.ErrSchemaDrift) {
		s.drift.Observe(ctx, err)
		rows, err = s.statuses.ListByAccountLegacy(ctx, subject.ID, itemID, kind)
	} else if err == nil {
		s.drift.Observe(ctx, nil)
	}
	if err != nil {
		return nil, err
	}
	return policy.Filter(policy.Statuses, subject, rows), nil
}
