package itemrequest

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/validation"
)

// CreateRequestInput holds the parameters for requesting a title.
type CreateRequestInput struct {
	Title  string  `json:"title" validate:"required,max=500"`
	Author string  `json:"author" validate:"required,max=300"`
	ISBN   *string `json:"isbn" validate:"omitempty,min=10,max=17"`
	Note   *string `json:"note" validate:"omitempty,max=2000"`
}

// Validate checks all fields and collects all errors.
func (i CreateRequestInput) Validate() error {
	i.Title = strings.TrimSpace(i.Title)
	i.Author = strings.TrimSpace(i.Author)
	i.ISBN = trimOrNil(i.ISBN)
	return validation.Struct(i)
}

// ResolveRequestInput holds an admin decision on a request.
type ResolveRequestInput struct {
	RequestID uuid.UUID            `json:"request_id" validate:"required"`
	Outcome   domain.RequestStatus `json:"outcome" validate:"required,oneof=approved rejected"`
	AdminNote *string              `json:"admin_note" validate:"omitempty,max=2000"`
}

// Validate checks all fields and collects all errors.
func (i ResolveRequestInput) Validate() error {
	return validation.Struct(i)
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
