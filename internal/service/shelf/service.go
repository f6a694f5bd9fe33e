package shelf

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

type statusRepo interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID, itemID *uuid.UUID, kind *domain.StatusKind) ([]domain.ItemStatus, error)
	ListByAccountLegacy(ctx context.Context, accountID uuid.UUID, itemID *uuid.UUID, kind *domain.StatusKind) ([]domain.ItemStatus, error)
	Upsert(ctx context.Context, st *domain.ItemStatus) (*domain.ItemStatus, error)
	UpsertLegacy(ctx context.Context, st *domain.ItemStatus) (*domain.ItemStatus, error)
	Delete(ctx context.Context, accountID, itemID uuid.UUID, kind domain.StatusKind) (bool, error)
}

// driftObserver receives the outcome of every operation that touches the
// drift-sensitive date columns.
type driftObserver interface {
	Observe(ctx context.Context, err error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the private per-account reading states ("the shelf").
type Service struct {
	statuses statusRepo
	drift    driftObserver
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new shelf service.
func NewService(log *slog.Logger, statuses statusRepo, drift driftObserver, tx txManager) *Service {
	return &Service{
		statuses: statuses,
		drift:    drift,
		tx:       tx,
		log:      log.With("service", "shelf"),
	}
}
