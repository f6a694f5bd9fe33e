package itemrequest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ItemRequest, error)
	List(ctx context.Context, filter domain.ItemRequestFilter) ([]domain.ItemRequest, error)
	Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, outcome domain.RequestStatus, adminNote *string, resolvedBy uuid.UUID) (*domain.ItemRequest, error)
}

// Service manages requests for titles missing from the catalog.
type Service struct {
	requests requestRepo
	log      *slog.Logger
}

// NewService creates a new item request service.
func NewService(log *slog.Logger, requests requestRepo) *Service {
	return &Service{
		requests: requests,
		log:      log.With("service", "itemrequest"),
	}
}
