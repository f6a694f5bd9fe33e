package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/validation"
)

// ItemInput holds the descriptive fields of a catalog item.
type ItemInput struct {
	ISBN          string  `json:"isbn" validate:"required,min=10,max=17"`
	Title         string  `json:"title" validate:"required,max=500"`
	Author        string  `json:"author" validate:"required,max=300"`
	Description   *string `json:"description" validate:"omitempty,max=10000"`
	Genre         *string `json:"genre" validate:"omitempty,max=100"`
	PublishedYear *int    `json:"published_year" validate:"omitempty,gte=1000,lte=9999"`
	CoverURL      *string `json:"cover_url" validate:"omitempty,max=512"`
}

// Validate checks all fields and collects all errors.
func (i ItemInput) Validate() error {
	return validation.Struct(i.normalized())
}

func (i ItemInput) normalized() ItemInput {
	i.ISBN = strings.TrimSpace(i.ISBN)
	i.Title = strings.TrimSpace(i.Title)
	i.Author = strings.TrimSpace(i.Author)
	return i
}

func (i ItemInput) toItem(id uuid.UUID) domain.Item {
	n := i.normalized()
	return domain.Item{
		ID:            id,
		ISBN:          n.ISBN,
		Title:         n.Title,
		Author:        n.Author,
		Description:   n.Description,
		Genre:         n.Genre,
		PublishedYear: n.PublishedYear,
		CoverURL:      n.CoverURL,
	}
}

// ListItemsInput holds catalog listing parameters.
type ListItemsInput struct {
	Author  *string              `json:"author"`
	Genre   *string              `json:"genre"`
	SortBy  domain.ItemSortField `json:"sort_by" validate:"omitempty,oneof=title rating created_at"`
	SortDir domain.SortDirection `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	Limit   int                  `json:"limit" validate:"gte=0,lte=200"`
	Offset  int                  `json:"offset" validate:"gte=0"`
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	return validation.Struct(i)
}
