package discussion

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/validation"
)

// CreateDiscussionInput holds the parameters for opening a thread.
type CreateDiscussionInput struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Body     string   `json:"body" validate:"required,max=20000"`
	Category string   `json:"category" validate:"required,max=50"`
	Tags     []string `json:"tags" validate:"max=10,dive,required,max=30"`
}

// Validate checks all fields and collects all errors.
func (i CreateDiscussionInput) Validate() error {
	return validation.Struct(i.normalized())
}

func (i CreateDiscussionInput) normalized() CreateDiscussionInput {
	i.Title = strings.TrimSpace(i.Title)
	i.Body = strings.TrimSpace(i.Body)
	i.Category = strings.ToLower(strings.TrimSpace(i.Category))
	i.Tags = normalizeTags(i.Tags)
	return i
}

// UpdateDiscussionInput holds the parameters for editing a thread.
// All fields are optional (nil = don't change).
type UpdateDiscussionInput struct {
	DiscussionID uuid.UUID `json:"discussion_id" validate:"required"`
	Title        *string   `json:"title" validate:"omitempty,max=200"`
	Body         *string   `json:"body" validate:"omitempty,max=20000"`
	Category     *string   `json:"category" validate:"omitempty,max=50"`
	Tags         []string  `json:"tags" validate:"omitempty,max=10,dive,required,max=30"`
}

// Validate checks all fields and collects all errors.
func (i UpdateDiscussionInput) Validate() error {
	var extra []domain.FieldError
	for _, f := range []struct {
		name string
		v    *string
	}{{"title", i.Title}, {"body", i.Body}, {"category", i.Category}} {
		if f.v != nil && strings.TrimSpace(*f.v) == "" {
			extra = append(extra, domain.FieldError{Field: f.name, Message: "required"})
		}
	}
	i.Tags = normalizeTags(i.Tags)
	return validation.Merge(validation.Struct(i), extra...)
}

// ReplyInput holds the body of a new or edited reply.
type ReplyInput struct {
	Body string `json:"body" validate:"required,max=10000"`
}

// Validate checks all fields and collects all errors.
func (i ReplyInput) Validate() error {
	i.Body = strings.TrimSpace(i.Body)
	return validation.Struct(i)
}

// normalizeTags lowercases, trims and deduplicates tags, keeping order.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
