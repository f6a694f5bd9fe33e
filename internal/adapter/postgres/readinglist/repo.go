// Package readinglist implements the ItemList and ItemListMembership
// repositories using PostgreSQL.
package readinglist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Repo provides reading list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reading list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const listColumns = `id, owner_id, name, description, is_public, created_at, updated_at`

const getByIDSQL = `
SELECT ` + listColumns + `
FROM item_lists
WHERE id = $1`

const listByOwnerSQL = `
SELECT ` + listColumns + `
FROM item_lists
WHERE owner_id = $1 AND (is_public OR NOT $2)
ORDER BY created_at, id`

const createSQL = `
INSERT INTO item_lists (id, owner_id, name, description, is_public)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + listColumns

const updateSQL = `
UPDATE item_lists
SET name = $2, description = $3, is_public = $4, updated_at = now()
WHERE id = $1
RETURNING ` + listColumns

const deleteSQL = `DELETE FROM item_lists WHERE id = $1`

// The primary key (list_id, item_id) absorbs duplicate adds.
const addItemSQL = `
INSERT INTO item_list_memberships (list_id, item_id)
VALUES ($1, $2)
ON CONFLICT (list_id, item_id) DO NOTHING`

const removeItemSQL = `
DELETE FROM item_list_memberships
WHERE list_id = $1 AND item_id = $2`

const listItemsSQL = `
SELECT i.id, i.isbn, i.title, i.author, i.description, i.genre, i.published_year, i.cover_url,
	i.rating, i.rating_count, i.created_at, i.updated_at
FROM item_list_memberships m
JOIN items i ON i.id = m.item_id
WHERE m.list_id = $1
ORDER BY m.created_at, i.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a list by primary key regardless of visibility.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ItemList, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	list, err := scanList(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "item_list", id)
	}
	return list, nil
}

// ListByOwner returns the owner's lists; publicOnly hides private ones.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) ([]domain.ItemList, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByOwnerSQL, ownerID, publicOnly)
	if err != nil {
		return nil, postgres.MapError(err, "account", ownerID)
	}
	defer rows.Close()

	lists := []domain.ItemList{}
	for rows.Next() {
		l, err := scanListRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "account", ownerID)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "account", ownerID)
	}
	return lists, nil
}

// ListItems returns the items on a list in insertion order.
func (r *Repo) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listItemsSQL, listID)
	if err != nil {
		return nil, postgres.MapError(err, "item_list", listID)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.ISBN, &it.Title, &it.Author, &it.Description, &it.Genre,
			&it.PublishedYear, &it.CoverURL, &it.Rating, &it.RatingCount, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, postgres.MapError(err, "item_list", listID)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "item_list", listID)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new list.
func (r *Repo) Create(ctx context.Context, l *domain.ItemList) (*domain.ItemList, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanList(q.QueryRow(ctx, createSQL, l.ID, l.OwnerID, l.Name, l.Description, l.IsPublic))
	if err != nil {
		return nil, postgres.MapError(err, "item_list", l.ID)
	}
	return created, nil
}

// Update overwrites the owner-editable columns.
func (r *Repo) Update(ctx context.Context, l *domain.ItemList) (*domain.ItemList, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanList(q.QueryRow(ctx, updateSQL, l.ID, l.Name, l.Description, l.IsPublic))
	if err != nil {
		return nil, postgres.MapError(err, "item_list", l.ID)
	}
	return updated, nil
}

// Delete removes a list; memberships cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "item_list", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("item_list %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddItem places an item on a list. A duplicate add succeeds with
// added=false and leaves the single existing row untouched.
func (r *Repo) AddItem(ctx context.Context, listID, itemID uuid.UUID) (added bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, addItemSQL, listID, itemID)
	if err != nil {
		return false, postgres.MapError(err, "item_list_membership", itemID)
	}
	return ct.RowsAffected() == 1, nil
}

// RemoveItem takes an item off a list. Removing an absent item is a no-op.
func (r *Repo) RemoveItem(ctx context.Context, listID, itemID uuid.UUID) (removed bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, removeItemSQL, listID, itemID)
	if err != nil {
		return false, postgres.MapError(err, "item_list_membership", itemID)
	}
	return ct.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanListRow(row pgx.Row) (domain.ItemList, error) {
	var l domain.ItemList
	err := row.Scan(&l.ID, &l.OwnerID, &l.Name, &l.Description, &l.IsPublic, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func scanList(row pgx.Row) (*domain.ItemList, error) {
	l, err := scanListRow(row)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
