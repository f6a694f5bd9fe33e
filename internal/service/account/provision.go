package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// EnsureAccount provisions the signed-in subject's account on first
// sign-in and returns the existing row on every later call.
func (s *Service) EnsureAccount(ctx context.Context, input EnsureAccountInput) (*domain.Account, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := domain.Account{
		ID:     subject.ID,
		Email:  input.Email,
		Handle: input.Handle,
		Role:   domain.UserRoleUser,
	}
	if err := policy.Accounts.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}

	acc, created, err := s.accounts.Create(ctx, &row)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("account.EnsureAccount: %w",
			domain.NewConflictError("email or handle is already taken"))
	}
	if err != nil {
		return nil, fmt.Errorf("account.EnsureAccount: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "account provisioned",
			slog.String("user_id", acc.ID.String()),
			slog.String("handle", acc.Handle),
		)
	}
	return acc, nil
}

// GetAccount returns any account by ID. Accounts are publicly readable.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account.GetAccount: %w", err)
	}
	if err := policy.Accounts.Check(ctx, policy.SubjectFromCtx(ctx), policy.ActionRead, *acc); err != nil {
		return nil, err
	}
	return acc, nil
}
