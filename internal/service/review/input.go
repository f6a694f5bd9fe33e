package review

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/validation"
)

// SubmitReviewInput holds the parameters for reviewing an item.
type SubmitReviewInput struct {
	ItemID    uuid.UUID `json:"item_id" validate:"required"`
	Score     int       `json:"score" validate:"gte=1,lte=5"`
	Title     *string   `json:"title" validate:"omitempty,max=200"`
	Body      string    `json:"body" validate:"max=10000"`
	IsSpoiler bool      `json:"is_spoiler"`
}

// Validate checks all fields and collects all errors.
func (i SubmitReviewInput) Validate() error {
	return validation.Struct(i)
}

// UpdateReviewInput holds the parameters for editing a review.
// All fields are optional (nil = don't change).
type UpdateReviewInput struct {
	ReviewID  uuid.UUID `json:"review_id" validate:"required"`
	Score     *int      `json:"score" validate:"omitempty,gte=1,lte=5"`
	Title     *string   `json:"title" validate:"omitempty,max=200"`
	Body      *string   `json:"body" validate:"omitempty,max=10000"`
	IsSpoiler *bool     `json:"is_spoiler"`
}

// Validate checks all fields and collects all errors.
func (i UpdateReviewInput) Validate() error {
	return validation.Struct(i)
}

// ReportReviewInput holds the parameters for flagging a review.
type ReportReviewInput struct {
	ReviewID    uuid.UUID           `json:"review_id" validate:"required"`
	Reason      domain.ReportReason `json:"reason" validate:"required,oneof=spam inappropriate spoiler harassment other"`
	Description *string             `json:"description" validate:"omitempty,max=2000"`
}

// Validate checks all fields and collects all errors.
func (i ReportReviewInput) Validate() error {
	return validation.Struct(i)
}

// ResolveReportInput holds a moderation decision.
type ResolveReportInput struct {
	ReportID uuid.UUID           `json:"report_id" validate:"required"`
	Outcome  domain.ReportStatus `json:"outcome" validate:"required,oneof=reviewed dismissed actionTaken"`
}

// Validate checks all fields and collects all errors.
func (i ResolveReportInput) Validate() error {
	return validation.Struct(i)
}

// trimOrNil trims whitespace. Returns nil if result is empty.
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
