package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// Promote grants the admin role to the account registered with email.
// Roles never change on a request path: the account update rule only lets
// owners edit their profile, so this succeeds only under
// policy.WithMaintenance, where the bypass is logged.
func (s *Service) Promote(ctx context.Context, email string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}
	if !policy.IsMaintenance(ctx) {
		return nil, domain.ErrUnauthorized
	}

	var promoted *domain.Account
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.accounts.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if err := policy.Accounts.Check(ctx, policy.SubjectFromCtx(ctx), policy.ActionUpdate, *current); err != nil {
			return err
		}
		if current.Role.IsAdmin() {
			promoted = current
			return nil
		}
		promoted, err = s.accounts.SetRoleByEmail(ctx, email, domain.UserRoleAdmin)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("account.Promote: %w", err)
	}

	s.log.WarnContext(ctx, "account promoted to admin",
		slog.String("user_id", promoted.ID.String()),
		slog.String("email", promoted.Email),
	)
	return promoted, nil
}
