// Package item implements the catalog Item repository using PostgreSQL.
// Rating and rating_count are owned by the aggregate repository and are
// never written here.
package item

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `id, isbn, title, author, description, genre, published_year, cover_url,
	rating, rating_count, created_at, updated_at`

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE id = $1`

const createSQL = `
INSERT INTO items (id, isbn, title, author, description, genre, published_year, cover_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + itemColumns

const updateSQL = `
UPDATE items
SET isbn = $2, title = $3, author = $4, description = $5, genre = $6,
	published_year = $7, cover_url = $8, updated_at = now()
WHERE id = $1
RETURNING ` + itemColumns

const deleteSQL = `DELETE FROM items WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	it, err := scanItem(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	return it, nil
}

// itemRow mirrors the items table for pgxscan.
type itemRow struct {
	ID            uuid.UUID `db:"id"`
	ISBN          string    `db:"isbn"`
	Title         string    `db:"title"`
	Author        string    `db:"author"`
	Description   *string   `db:"description"`
	Genre         *string   `db:"genre"`
	PublishedYear *int      `db:"published_year"`
	CoverURL      *string   `db:"cover_url"`
	Rating        float64   `db:"rating"`
	RatingCount   int       `db:"rating_count"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// List returns items matching filter.
func (r *Repo) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	limit, offset := postgres.Page(filter.Limit, filter.Offset)
	b := postgres.Builder().
		Select("id", "isbn", "title", "author", "description", "genre", "published_year", "cover_url",
			"rating", "rating_count", "created_at", "updated_at").
		From("items").
		Limit(limit).
		Offset(offset)

	if filter.Author != nil {
		b = b.Where(sq.Eq{"author": *filter.Author})
	}
	if filter.Genre != nil {
		b = b.Where(sq.Eq{"genre": *filter.Genre})
	}

	sortBy := domain.ItemSortTitle
	if filter.SortBy.IsValid() {
		sortBy = filter.SortBy
	}
	dir := domain.SortAsc
	if filter.SortDir.IsValid() {
		dir = filter.SortDir
	}
	b = b.OrderBy(fmt.Sprintf("%s %s", sortBy, dir), "id ASC")

	var rows []itemRow
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapQueryError(err, "item list")
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.Item(row))
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item. The aggregate columns start at zero.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanItem(q.QueryRow(ctx, createSQL,
		it.ID, it.ISBN, it.Title, it.Author, it.Description, it.Genre, it.PublishedYear, it.CoverURL,
	))
	if err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}
	return created, nil
}

// Update overwrites the descriptive columns of an item.
func (r *Repo) Update(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanItem(q.QueryRow(ctx, updateSQL,
		it.ID, it.ISBN, it.Title, it.Author, it.Description, it.Genre, it.PublishedYear, it.CoverURL,
	))
	if err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}
	return updated, nil
}

// Delete removes an item; reviews, statuses and memberships cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	if err := row.Scan(&it.ID, &it.ISBN, &it.Title, &it.Author, &it.Description, &it.Genre,
		&it.PublishedYear, &it.CoverURL, &it.Rating, &it.RatingCount, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}
