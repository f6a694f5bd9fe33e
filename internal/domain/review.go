package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is one account's scored opinion of an item. At most one per
// (account, item) pair.
type Review struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	AccountID uuid.UUID
	Score     int
	Title     *string
	Body      string
	IsSpoiler bool
	IsFlagged bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewReport flags a review for moderation.
type ReviewReport struct {
	ID          uuid.UUID
	ReviewID    uuid.UUID
	ReporterID  uuid.UUID
	Reason      ReportReason
	Description *string
	Status      ReportStatus
	ResolvedBy  *uuid.UUID
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
