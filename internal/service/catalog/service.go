package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, it *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the book catalog. Reads are public, writes are admin only.
type Service struct {
	items itemRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	tx txManager,
) *Service {
	return &Service{
		items: items,
		tx:    tx,
		log:   log.With("service", "catalog"),
	}
}
