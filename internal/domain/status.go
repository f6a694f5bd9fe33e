package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus is a private per-account reading state for an item.
// Setting FinishDate never changes Kind.
type ItemStatus struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	ItemID         uuid.UUID
	Kind           StatusKind
	StartDate      *time.Time
	FinishDate     *time.Time
	PersonalRating *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasDates returns true if either date column is set.
func (s ItemStatus) HasDates() bool {
	return s.StartDate != nil || s.FinishDate != nil
}
