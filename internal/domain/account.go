package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a community member. Rows are created on first sign-in and are
// never hard-deleted by this layer.
type Account struct {
	ID          uuid.UUID
	Email       string
	Handle      string
	Role        UserRole
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subject is the authenticated caller of an operation. A zero ID means anonymous.
type Subject struct {
	ID   uuid.UUID
	Role UserRole
}

// IsAuthenticated returns true if the subject carries an account id.
func (s Subject) IsAuthenticated() bool {
	return s.ID != uuid.Nil
}

// IsAdmin returns true for authenticated subjects holding the admin role.
func (s Subject) IsAdmin() bool {
	return s.IsAuthenticated() && s.Role.IsAdmin()
}

// Owns returns true if the subject is the given authenticated owner.
func (s Subject) Owns(owner uuid.UUID) bool {
	return s.IsAuthenticated() && s.ID == owner
}
