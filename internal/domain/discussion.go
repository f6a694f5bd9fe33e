package domain

import (
	"time"

	"github.com/google/uuid"
)

// Discussion is a public board thread. ReplyCount is derived.
type Discussion struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	Title      string
	Body       string
	Category   string
	Tags       []string
	ReplyCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DiscussionReply belongs to exactly one discussion.
type DiscussionReply struct {
	ID           uuid.UUID
	DiscussionID uuid.UUID
	AuthorID     uuid.UUID
	Body         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DiscussionFilter holds board listing parameters.
type DiscussionFilter struct {
	Category *string
	Tag      *string
	Limit    int
	Offset   int
}
