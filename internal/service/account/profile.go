package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// UpdateProfile updates the subject's own profile fields.
// Returns ErrUnauthorized if no subject is found in context.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Account, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Account
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.accounts.GetByID(ctx, subject.ID)
		if err != nil {
			return err
		}
		if err := policy.Accounts.Check(ctx, subject, policy.ActionUpdate, *current); err != nil {
			return err
		}

		updated, err = s.accounts.UpdateProfile(ctx, current.ID,
			merge(current.DisplayName, input.DisplayName),
			merge(current.Bio, input.Bio),
			merge(current.AvatarURL, input.AvatarURL),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", subject.ID.String()))

	return updated, nil
}

// merge keeps current when next is nil and clears the field when next is empty.
func merge(current, next *string) *string {
	switch {
	case next == nil:
		return current
	case *next == "":
		return nil
	}
	return next
}
