package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	return mapError(err, fmt.Sprintf("%s %s", entity, id))
}

// MapQueryError is MapError for statements that address no single row,
// such as listings and schema probes.
func MapQueryError(err error, what string) error {
	if err == nil {
		return nil
	}
	return mapError(err, what)
}

func mapError(err error, prefix string) error {
	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch code := pgErr.Code; {
		case code == pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case code == pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case code == pgerrcode.CheckViolation,
			code == pgerrcode.NotNullViolation,
			code == pgerrcode.ExclusionViolation,
			code == pgerrcode.InvalidTextRepresentation,
			code == pgerrcode.NumericValueOutOfRange,
			code == pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%s: %w: %s", prefix, domain.ErrConstraintViolation, constraintDetail(pgErr))
		case code == pgerrcode.UndefinedColumn, code == pgerrcode.UndefinedTable:
			return fmt.Errorf("%s: %w: %s", prefix, domain.ErrSchemaDrift, pgErr.Message)
		case isTransientCode(code):
			return fmt.Errorf("%s: %w: %s", prefix, domain.ErrTransientUnavailable, pgErr.Message)
		}
	}

	if isConnectionFailure(err) {
		return fmt.Errorf("%s: %w: %v", prefix, domain.ErrTransientUnavailable, err)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", prefix, err)
}

// IsRetryable reports whether re-running the whole transaction may succeed.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrTransientUnavailable) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isTransientCode(pgErr.Code)
	}
	return isConnectionFailure(err)
}

func isTransientCode(code string) bool {
	return pgerrcode.IsTransactionRollback(code) ||
		pgerrcode.IsConnectionException(code) ||
		code == pgerrcode.AdminShutdown ||
		code == pgerrcode.CannotConnectNow ||
		code == pgerrcode.TooManyConnections
}

func isConnectionFailure(err error) bool {
	// context.DeadlineExceeded satisfies net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func constraintDetail(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.Message
}

func isRollbackReported(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgerrcode.IsTransactionRollback(pgErr.Code)
}
