// Package schemaprobe checks whether the live schema carries the columns
// the application reads, without introspecting the catalog.
//
// Each check is a zero-row SELECT of the expected columns. The only
// question asked of the result is whether the error classifies as
// domain.ErrSchemaDrift.
package schemaprobe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// Expectation names columns that must exist on a table.
type Expectation struct {
	Table   string
	Columns []string
}

// Expected lists the drift-sensitive columns added after the core schema.
var Expected = []Expectation{
	{Table: "item_statuses", Columns: []string{"start_date", "finish_date"}},
}

// Prober runs expectation checks against a database.
type Prober struct {
	db     postgres.Querier
	expect []Expectation
}

// New creates a Prober. With no expectations it checks Expected.
func New(db postgres.Querier, expect ...Expectation) *Prober {
	if len(expect) == 0 {
		expect = Expected
	}
	return &Prober{db: db, expect: expect}
}

// Probe returns the missing columns as "table.column". A nil slice with a
// nil error means the schema matches. Errors other than drift are returned
// as is, so a down store surfaces domain.ErrTransientUnavailable.
func (p *Prober) Probe(ctx context.Context) ([]string, error) {
	var missing []string
	for _, e := range p.expect {
		err := p.selectNone(ctx, e.Table, e.Columns...)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrSchemaDrift) {
			return nil, err
		}

		cols, err := p.missingColumns(ctx, e)
		if err != nil {
			return nil, err
		}
		missing = append(missing, cols...)
	}
	return missing, nil
}

// missingColumns narrows a failed expectation to the individual columns.
// A missing table reports every column.
func (p *Prober) missingColumns(ctx context.Context, e Expectation) ([]string, error) {
	var out []string
	for _, col := range e.Columns {
		err := p.selectNone(ctx, e.Table, col)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrSchemaDrift):
			out = append(out, e.Table+"."+col)
		default:
			return nil, err
		}
	}
	return out, nil
}

func (p *Prober) selectNone(ctx context.Context, table string, columns ...string) error {
	q := postgres.QuerierFromCtx(ctx, p.db)

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	query := fmt.Sprintf("SELECT %s FROM %s LIMIT 0", strings.Join(quoted, ", "), pgx.Identifier{table}.Sanitize())

	rows, err := q.Query(ctx, query)
	if err != nil {
		return mapProbeError(err, table)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return mapProbeError(err, table)
	}
	return nil
}

// A probe that times out counts as an unavailable store, not as drift.
func mapProbeError(err error, table string) error {
	mapped := postgres.MapQueryError(err, "schema probe "+table)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", domain.ErrTransientUnavailable, mapped)
	}
	return mapped
}
