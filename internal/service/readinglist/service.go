package readinglist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ItemList, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) ([]domain.ItemList, error)
	ListItems(ctx context.Context, listID uuid.UUID) ([]domain.Item, error)
	Create(ctx context.Context, l *domain.ItemList) (*domain.ItemList, error)
	Update(ctx context.Context, l *domain.ItemList) (*domain.ItemList, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, listID, itemID uuid.UUID) (bool, error)
	RemoveItem(ctx context.Context, listID, itemID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages reading lists and the items placed on them.
type Service struct {
	lists listRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new reading list service.
func NewService(log *slog.Logger, lists listRepo, tx txManager) *Service {
	return &Service{
		lists: lists,
		tx:    tx,
		log:   log.With("service", "readinglist"),
	}
}
