// Package status implements the ItemStatus repository using PostgreSQL.
//
// The *Legacy variants address only the columns of the original
// item_statuses table. Callers fall back to them when the date columns are
// missing from the live schema.
package status

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Repo provides item status persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item status repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const statusColumns = `id, account_id, item_id, kind, start_date, finish_date, personal_rating, created_at, updated_at`

const legacyStatusColumns = `id, account_id, item_id, kind, NULL::date, NULL::date, personal_rating, created_at, updated_at`

// The conflict target is item_statuses_account_item_kind_key, so a
// concurrent double submit resolves to one row; the loser becomes an update.
const upsertSQL = `
INSERT INTO item_statuses (id, account_id, item_id, kind, start_date, finish_date, personal_rating)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (account_id, item_id, kind) DO UPDATE
SET start_date      = EXCLUDED.start_date,
	finish_date     = EXCLUDED.finish_date,
	personal_rating = EXCLUDED.personal_rating,
	updated_at      = now()
RETURNING ` + statusColumns

const upsertLegacySQL = `
INSERT INTO item_statuses (id, account_id, item_id, kind, personal_rating)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (account_id, item_id, kind) DO UPDATE
SET personal_rating = EXCLUDED.personal_rating,
	updated_at      = now()
RETURNING ` + legacyStatusColumns

const deleteSQL = `
DELETE FROM item_statuses
WHERE account_id = $1 AND item_id = $2 AND kind = $3`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByAccount returns the account's statuses, optionally narrowed to one
// item and/or kind, newest first.
func (r *Repo) ListByAccount(ctx context.Context, accountID uuid.UUID, itemID *uuid.UUID, kind *domain.StatusKind) ([]domain.ItemStatus, error) {
	return r.list(ctx, statusColumns, accountID, itemID, kind)
}

// ListByAccountLegacy is ListByAccount without the date columns.
func (r *Repo) ListByAccountLegacy(ctx context.Context, accountID uuid.UUID, itemID *uuid.UUID, kind *domain.StatusKind) ([]domain.ItemStatus, error) {
	return r.list(ctx, legacyStatusColumns, accountID, itemID, kind)
}

func (r *Repo) list(ctx context.Context, columns string, accountID uuid.UUID, itemID *uuid.UUID, kind *domain.StatusKind) ([]domain.ItemStatus, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns).
		From("item_statuses").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("updated_at DESC", "id")
	if itemID != nil {
		b = b.Where(sq.Eq{"item_id": *itemID})
	}
	if kind != nil {
		b = b.Where(sq.Eq{"kind": string(*kind)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("item_status: build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "account", accountID)
	}
	defer rows.Close()

	statuses := []domain.ItemStatus{}
	for rows.Next() {
		st, err := scanStatusRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "account", accountID)
		}
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "account", accountID)
	}
	return statuses, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the status or replaces the optional fields of the existing
// (account, item, kind) row with the given values.
func (r *Repo) Upsert(ctx context.Context, st *domain.ItemStatus) (*domain.ItemStatus, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	saved, err := scanStatus(q.QueryRow(ctx, upsertSQL,
		st.ID, st.AccountID, st.ItemID, string(st.Kind), st.StartDate, st.FinishDate, st.PersonalRating,
	))
	if err != nil {
		return nil, postgres.MapError(err, "item_status", st.ID)
	}
	return saved, nil
}

// UpsertLegacy is Upsert for a schema without the date columns; the dates
// of st are ignored.
func (r *Repo) UpsertLegacy(ctx context.Context, st *domain.ItemStatus) (*domain.ItemStatus, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	saved, err := scanStatus(q.QueryRow(ctx, upsertLegacySQL,
		st.ID, st.AccountID, st.ItemID, string(st.Kind), st.PersonalRating,
	))
	if err != nil {
		return nil, postgres.MapError(err, "item_status", st.ID)
	}
	return saved, nil
}

// Delete removes one (account, item, kind) row. Deleting an absent row is a no-op.
func (r *Repo) Delete(ctx context.Context, accountID, itemID uuid.UUID, kind domain.StatusKind) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteSQL, accountID, itemID, string(kind))
	if err != nil {
		return false, postgres.MapQueryError(err, "item_status delete")
	}
	return ct.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanStatusRow(row pgx.Row) (domain.ItemStatus, error) {
	var (
		st     domain.ItemStatus
		kind   string
		rating *int16
	)
	if err := row.Scan(&st.ID, &st.AccountID, &st.ItemID, &kind, &st.StartDate, &st.FinishDate,
		&rating, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return st, err
	}
	st.Kind = domain.StatusKind(kind)
	if rating != nil {
		v := int(*rating)
		st.PersonalRating = &v
	}
	return st, nil
}

func scanStatus(row pgx.Row) (*domain.ItemStatus, error) {
	st, err := scanStatusRow(row)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
