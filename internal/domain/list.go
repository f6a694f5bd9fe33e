package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemList is a reading list owned by one account.
type ItemList struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description *string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemListMembership places an item on a list. Unique per (list, item).
type ItemListMembership struct {
	ListID    uuid.UUID
	ItemID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
