// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const accountColumns = `id, email, handle, role, display_name, bio, avatar_url, created_at, updated_at`

const getByIDSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE email = $1`

// The id conflict target makes repeated first sign-ins a no-op, while an
// email or handle owned by another account still raises unique_violation.
const createSQL = `
INSERT INTO accounts (id, email, handle, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING
RETURNING ` + accountColumns

const updateProfileSQL = `
UPDATE accounts
SET display_name = $2, bio = $3, avatar_url = $4, updated_at = now()
WHERE id = $1
RETURNING ` + accountColumns

const setRoleByEmailSQL = `
UPDATE accounts
SET role = $2, updated_at = now()
WHERE email = $1
RETURNING ` + accountColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// GetByEmail returns an account by its unique email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapQueryError(err, fmt.Sprintf("account %q", email))
	}
	return acc, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts acc. It returns created=false with the stored row when an
// account with the same id already exists.
func (r *Repo) Create(ctx context.Context, acc *domain.Account) (*domain.Account, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanAccount(q.QueryRow(ctx, createSQL, acc.ID, acc.Email, acc.Handle, string(acc.Role)))
	if err == nil {
		return created, true, nil
	}
	if !isNoRows(err) {
		return nil, false, postgres.MapError(err, "account", acc.ID)
	}

	existing, err := r.GetByID(ctx, acc.ID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// UpdateProfile overwrites the optional profile fields.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, displayName, bio, avatarURL *string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, updateProfileSQL, id, displayName, bio, avatarURL))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// SetRoleByEmail changes the role of the account owning email.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	acc, err := scanAccount(q.QueryRow(ctx, setRoleByEmailSQL, email, string(role)))
	if err != nil {
		return nil, postgres.MapQueryError(err, fmt.Sprintf("account %q", email))
	}
	return acc, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		acc  domain.Account
		role string
	)
	if err := row.Scan(&acc.ID, &acc.Email, &acc.Handle, &role,
		&acc.DisplayName, &acc.Bio, &acc.AvatarURL, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
		return nil, err
	}
	acc.Role = domain.UserRole(role)
	return &acc, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
