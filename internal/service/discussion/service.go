package discussion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

type discussionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error)
	List(ctx context.Context, filter domain.DiscussionFilter) ([]domain.Discussion, error)
	Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error)
	Update(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetReply(ctx context.Context, id uuid.UUID) (*domain.DiscussionReply, error)
	ListReplies(ctx context.Context, discussionID uuid.UUID, limit, offset int) ([]domain.DiscussionReply, error)
	CreateReply(ctx context.Context, rp *domain.DiscussionReply) (*domain.DiscussionReply, error)
	UpdateReply(ctx context.Context, id uuid.UUID, body string) (*domain.DiscussionReply, error)
	DeleteReply(ctx context.Context, id uuid.UUID) error
}

// replyCounter recomputes reply_count inside the caller's transaction.
type replyCounter interface {
	DiscussionRepliesChanged(ctx context.Context, discussionID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the discussion board.
type Service struct {
	discussions discussionRepo
	counter     replyCounter
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new discussion service.
func NewService(log *slog.Logger, discussions discussionRepo, counter replyCounter, tx txManager) *Service {
	return &Service{
		discussions: discussions,
		counter:     counter,
		tx:          tx,
		log:         log.With("service", "discussion"),
	}
}
