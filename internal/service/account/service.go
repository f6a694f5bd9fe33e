package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

// accountRepo defines the account repository interface needed by account service.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, displayName, bio, avatarURL *string) (*domain.Account, error)
	SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.Account, error)
}

// txManager defines the transaction manager interface needed by account service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account provisioning and profile operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	tx       txManager
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		tx:       tx,
	}
}
