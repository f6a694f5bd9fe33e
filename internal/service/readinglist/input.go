package readinglist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/validation"
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsPublic    bool    `json:"is_public"`
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	return validation.Struct(i)
}

// UpdateListInput holds the parameters for editing a list.
// All fields are optional (nil = don't change, "" description = clear).
type UpdateListInput struct {
	ListID      uuid.UUID `json:"list_id" validate:"required"`
	Name        *string   `json:"name" validate:"omitempty,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=1000"`
	IsPublic    *bool     `json:"is_public"`
}

// Validate checks all fields and collects all errors.
func (i UpdateListInput) Validate() error {
	var extra []domain.FieldError
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		extra = append(extra, domain.FieldError{Field: "name", Message: "required"})
	}
	return validation.Merge(validation.Struct(i), extra...)
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
