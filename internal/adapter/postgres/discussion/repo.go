// Package discussion implements the Discussion and DiscussionReply
// repositories using PostgreSQL.
package discussion

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Repo provides discussion board persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new discussion repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const discussionColumns = `id, author_id, title, body, category, tags, reply_count, created_at, updated_at`

const replyColumns = `id, discussion_id, author_id, body, created_at, updated_at`

const getByIDSQL = `
SELECT ` + discussionColumns + `
FROM discussions
WHERE id = $1`

const createSQL = `
INSERT INTO discussions (id, author_id, title, body, category, tags)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + discussionColumns

const updateSQL = `
UPDATE discussions
SET title = $2, body = $3, category = $4, tags = $5, updated_at = now()
WHERE id = $1
RETURNING ` + discussionColumns

const deleteSQL = `DELETE FROM discussions WHERE id = $1`

const getReplySQL = `
SELECT ` + replyColumns + `
FROM discussion_replies
WHERE id = $1`

const listRepliesSQL = `
SELECT ` + replyColumns + `
FROM discussion_replies
WHERE discussion_id = $1
ORDER BY created_at ASC, id
LIMIT $2 OFFSET $3`

const createReplySQL = `
INSERT INTO discussion_replies (id, discussion_id, author_id, body)
VALUES ($1, $2, $3, $4)
RETURNING ` + replyColumns

const updateReplySQL = `
UPDATE discussion_replies
SET body = $2, updated_at = now()
WHERE id = $1
RETURNING ` + replyColumns

const deleteReplySQL = `DELETE FROM discussion_replies WHERE id = $1`

// ---------------------------------------------------------------------------
// Discussion operations
// ---------------------------------------------------------------------------

// GetByID returns a discussion by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	d, err := scanDiscussion(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "discussion", id)
	}
	return d, nil
}

type discussionRow struct {
	ID         uuid.UUID `db:"id"`
	AuthorID   uuid.UUID `db:"author_id"`
	Title      string    `db:"title"`
	Body       string    `db:"body"`
	Category   string    `db:"category"`
	Tags       []string  `db:"tags"`
	ReplyCount int       `db:"reply_count"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// List returns discussions newest first, optionally narrowed by category and tag.
func (r *Repo) List(ctx context.Context, filter domain.DiscussionFilter) ([]domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	l, o := postgres.Page(filter.Limit, filter.Offset)
	b := postgres.Builder().
		Select("id", "author_id", "title", "body", "category", "tags", "reply_count", "created_at", "updated_at").
		From("discussions").
		OrderBy("created_at DESC", "id ASC").
		Limit(l).
		Offset(o)
	if filter.Category != nil {
		b = b.Where(sq.Eq{"category": *filter.Category})
	}
	if filter.Tag != nil {
		b = b.Where("? = ANY(tags)", *filter.Tag)
	}

	var rows []discussionRow
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapQueryError(err, "discussion list")
	}

	out := make([]domain.Discussion, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Discussion(row))
	}
	return out, nil
}

// Create inserts a discussion with no replies.
func (r *Repo) Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanDiscussion(q.QueryRow(ctx, createSQL,
		d.ID, d.AuthorID, d.Title, d.Body, d.Category, tagsOrEmpty(d.Tags),
	))
	if err != nil {
		return nil, postgres.MapError(err, "discussion", d.ID)
	}
	return created, nil
}

// Update rewrites the author-editable fields. ReplyCount is untouched.
func (r *Repo) Update(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanDiscussion(q.QueryRow(ctx, updateSQL,
		d.ID, d.Title, d.Body, d.Category, tagsOrEmpty(d.Tags),
	))
	if err != nil {
		return nil, postgres.MapError(err, "discussion", d.ID)
	}
	return updated, nil
}

// Delete removes a discussion and, by cascade, its replies.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "discussion", id)
	}
	if ct.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "discussion", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reply operations
// ---------------------------------------------------------------------------

// GetReply returns a reply by primary key.
func (r *Repo) GetReply(ctx context.Context, id uuid.UUID) (*domain.DiscussionReply, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rp, err := scanReply(q.QueryRow(ctx, getReplySQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "discussion_reply", id)
	}
	return rp, nil
}

// ListReplies returns a discussion's replies oldest first.
func (r *Repo) ListReplies(ctx context.Context, discussionID uuid.UUID, limit, offset int) ([]domain.DiscussionReply, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	l, o := postgres.Page(limit, offset)
	rows, err := q.Query(ctx, listRepliesSQL, discussionID, int64(l), int64(o))
	if err != nil {
		return nil, postgres.MapError(err, "discussion", discussionID)
	}
	defer rows.Close()

	replies := []domain.DiscussionReply{}
	for rows.Next() {
		rp, err := scanReply(rows)
		if err != nil {
			return nil, postgres.MapError(err, "discussion", discussionID)
		}
		replies = append(replies, *rp)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "discussion", discussionID)
	}
	return replies, nil
}

// CreateReply inserts a reply. A missing discussion maps to domain.ErrNotFound.
func (r *Repo) CreateReply(ctx context.Context, rp *domain.DiscussionReply) (*domain.DiscussionReply, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanReply(q.QueryRow(ctx, createReplySQL, rp.ID, rp.DiscussionID, rp.AuthorID, rp.Body))
	if err != nil {
		return nil, postgres.MapError(err, "discussion_reply", rp.ID)
	}
	return created, nil
}

// UpdateReply rewrites a reply body.
func (r *Repo) UpdateReply(ctx context.Context, id uuid.UUID, body string) (*domain.DiscussionReply, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanReply(q.QueryRow(ctx, updateReplySQL, id, body))
	if err != nil {
		return nil, postgres.MapError(err, "discussion_reply", id)
	}
	return updated, nil
}

// DeleteReply removes a reply.
func (r *Repo) DeleteReply(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := q.Exec(ctx, deleteReplySQL, id)
	if err != nil {
		return postgres.MapError(err, "discussion_reply", id)
	}
	if ct.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "discussion_reply", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanDiscussion(row pgx.Row) (*domain.Discussion, error) {
	var d domain.Discussion
	if err := row.Scan(&d.ID, &d.AuthorID, &d.Title, &d.Body, &d.Category, &d.Tags,
		&d.ReplyCount, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func scanReply(row pgx.Row) (*domain.DiscussionReply, error) {
	var rp domain.DiscussionReply
	if err := row.Scan(&rp.ID, &rp.DiscussionID, &rp.AuthorID, &rp.Body, &rp.CreatedAt, &rp.UpdatedAt); err != nil {
		return nil, err
	}
	return &rp, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
