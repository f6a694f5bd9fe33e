package account

import (
	"regexp"
	"strings"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/validation"
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// EnsureAccountInput holds the identity claims of a first sign-in.
type EnsureAccountInput struct {
	Email  string `json:"email" validate:"required,email,max=320"`
	Handle string `json:"handle" validate:"required,min=3,max=32"`
}

// Validate checks all fields and collects all errors.
func (i EnsureAccountInput) Validate() error {
	var extra []domain.FieldError
	if i.Handle != "" && !handlePattern.MatchString(i.Handle) {
		extra = append(extra, domain.FieldError{Field: "handle", Message: "letters, digits and underscores only"})
	}
	return validation.Merge(validation.Struct(i), extra...)
}

func (i EnsureAccountInput) normalized() EnsureAccountInput {
	return EnsureAccountInput{
		Email:  strings.ToLower(strings.TrimSpace(i.Email)),
		Handle: strings.TrimSpace(i.Handle),
	}
}

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change, empty string = clear).
// Tags only see non-nil fields, and an empty string counts as a value.
type UpdateProfileInput struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Bio         *string `json:"bio" validate:"omitempty,max=2000"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,max=512"`
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var extra []domain.FieldError
	if i.AvatarURL != nil && *i.AvatarURL != "" {
		if fe := validation.Var("avatar_url", *i.AvatarURL, "url"); fe != nil {
			extra = append(extra, *fe)
		}
	}
	return validation.Merge(validation.Struct(i), extra...)
}
