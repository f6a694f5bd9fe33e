package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemRequest asks the admins to add a missing item to the catalog.
type ItemRequest struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Title       string
	Author      string
	ISBN        *string
	Note        *string
	Status      RequestStatus
	AdminNote   *string
	ResolvedBy  *uuid.UUID
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemRequestFilter narrows request listings. A nil RequesterID lists all
// requests and is only honored for admins.
type ItemRequestFilter struct {
	RequesterID *uuid.UUID
	Status      *RequestStatus
	Limit       int
	Offset      int
}
