package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with the user role.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	return seedAccount(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates an account with the admin role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	return seedAccount(t, pool, domain.UserRoleAdmin)
}

func seedAccount(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	acc := domain.Account{
		ID:     uuid.New(),
		Email:  "reader-" + suffix + "@example.com",
		Handle: "reader_" + suffix,
		Role:   role,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO accounts (id, email, handle, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		acc.ID, acc.Email, acc.Handle, string(acc.Role),
	).Scan(&acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return acc
}

// SeedItem creates a catalog item with no reviews.
func SeedItem(t *testing.T, pool *pgxpool.Pool) domain.Item {
	t.Helper()

	suffix := uniqueSuffix()
	item := domain.Item{
		ID:     uuid.New(),
		ISBN:   "978-" + suffix,
		Title:  "Test Title " + suffix,
		Author: "Test Author",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO items (id, isbn, title, author)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		item.ID, item.ISBN, item.Title, item.Author,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

// SeedReview creates a review without touching the item aggregates.
func SeedReview(t *testing.T, pool *pgxpool.Pool, itemID, accountID uuid.UUID, score int) domain.Review {
	t.Helper()

	rv := domain.Review{
		ID:        uuid.New(),
		ItemID:    itemID,
		AccountID: accountID,
		Score:     score,
		Body:      "seeded review",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO reviews (id, item_id, account_id, score, body)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		rv.ID, rv.ItemID, rv.AccountID, rv.Score, rv.Body,
	).Scan(&rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedReview insert: %v", err)
	}

	return rv
}

// SeedList creates a reading list owned by ownerID.
func SeedList(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, public bool) domain.ItemList {
	t.Helper()

	list := domain.ItemList{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "List " + uniqueSuffix(),
		IsPublic: public,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO item_lists (id, owner_id, name, is_public)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		list.ID, list.OwnerID, list.Name, list.IsPublic,
	).Scan(&list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert: %v", err)
	}

	return list
}

// SeedDiscussion creates a discussion with no replies.
func SeedDiscussion(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Discussion {
	t.Helper()

	d := domain.Discussion{
		ID:       uuid.New(),
		AuthorID: authorID,
		Title:    "Thread " + uniqueSuffix(),
		Body:     "What are you reading?",
		Category: "general",
		Tags:     []string{"chat"},
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO discussions (id, author_id, title, body, category, tags)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		d.ID, d.AuthorID, d.Title, d.Body, d.Category, d.Tags,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDiscussion insert: %v", err)
	}

	return d
}
