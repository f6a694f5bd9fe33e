package shelf

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/validation"
)

// SetItemStatusInput holds the parameters for setting one status kind on
// an item. The optional fields replace whatever the row held before.
type SetItemStatusInput struct {
	ItemID         uuid.UUID         `json:"item_id" validate:"required"`
	Kind           domain.StatusKind `json:"kind" validate:"required,oneof=want reading completed favorite"`
	StartDate      *time.Time        `json:"start_date"`
	FinishDate     *time.Time        `json:"finish_date"`
	PersonalRating *int              `json:"personal_rating" validate:"omitempty,gte=1,lte=5"`
}

// Validate checks all fields and collects all errors.
func (i SetItemStatusInput) Validate() error {
	var extra []domain.FieldError
	start, finish := dateOnly(i.StartDate), dateOnly(i.FinishDate)
	if start != nil && finish != nil && finish.Before(*start) {
		extra = append(extra, domain.FieldError{Field: "finish_date", Message: "must not be before start_date"})
	}
	return validation.Merge(validation.Struct(i), extra...)
}

// dateOnly drops the time of day; the columns are calendar dates.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	out := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &out
}
