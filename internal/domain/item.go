package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry (a book). Rating and RatingCount are derived from
// the item's reviews and are never written by callers.
type Item struct {
	ID            uuid.UUID
	ISBN          string
	Title         string
	Author        string
	Description   *string
	Genre         *string
	PublishedYear *int
	CoverURL      *string
	Rating        float64
	RatingCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RatingSummary is the aggregate state of an item after a recompute.
type RatingSummary struct {
	ItemID      uuid.UUID
	Rating      float64
	RatingCount int
}

// ItemFilter holds catalog listing parameters.
type ItemFilter struct {
	Author  *string
	Genre   *string
	SortBy  ItemSortField
	SortDir SortDirection
	Limit   int
	Offset  int
}
