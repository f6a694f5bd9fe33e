package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

type reviewRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListByItem(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]domain.Review, error)
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewReport, error)
	List(ctx context.Context, status *domain.ReportStatus, limit, offset int) ([]domain.ReviewReport, error)
	Create(ctx context.Context, rep *domain.ReviewReport) (*domain.ReviewReport, error)
	Resolve(ctx context.Context, id uuid.UUID, outcome domain.ReportStatus, resolvedBy uuid.UUID) (*domain.ReviewReport, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
}

// ratingEngine recomputes item aggregates inside the caller's transaction.
type ratingEngine interface {
	ItemReviewsChanged(ctx context.Context, itemID uuid.UUID) (domain.RatingSummary, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages reviews and their moderation reports.
type Service struct {
	reviews reviewRepo
	reports reportRepo
	items   itemRepo
	ratings ratingEngine
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	reviews reviewRepo,
	reports reportRepo,
	items itemRepo,
	ratings ratingEngine,
	tx txManager,
) *Service {
	return &Service{
		reviews: reviews,
		reports: reports,
		items:   items,
		ratings: ratings,
		tx:      tx,
		log:     log.With("service", "review"),
	}
}
