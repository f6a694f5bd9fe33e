package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"

	"github.com/bookhive/bookhive-backend/internal/config"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

// TxManager manages database transactions using the context pattern.
// A RunInTx call made inside a RunInTx callback joins the outer transaction.
type TxManager struct {
	db    DB
	retry config.RetryConfig
	log   *slog.Logger
}

// NewTxManager creates a new TxManager. A zero retry config runs every
// transaction exactly once.
func NewTxManager(db DB, retry config.RetryConfig, log *slog.Logger) *TxManager {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &TxManager{db: db, retry: retry, log: log.With("component", "txmanager")}
}

// InTx reports whether ctx already carries a transaction started by a TxManager.
func (m *TxManager) InTx(ctx context.Context) bool {
	return InTx(ctx)
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back; serialization failures, deadlocks and lost
// connections re-run fn in a fresh transaction, bounded by the retry config.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	attempt := 0
	op := func() error {
		attempt++
		retryable, err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !retryable || attempt >= m.retry.MaxAttempts {
			return backoff.Permanent(err)
		}
		m.log.WarnContext(ctx, "retrying transaction",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		return err
	}

	err := backoff.Retry(op, backoff.WithContext(m.newBackOff(), ctx))
	if err == nil {
		return nil
	}
	if IsRetryable(err) && !errors.Is(err, domain.ErrTransientUnavailable) {
		return fmt.Errorf("after %d attempts: %w: %v", attempt, domain.ErrTransientUnavailable, err)
	}
	if attempt > 1 {
		return fmt.Errorf("after %d attempts: %w", attempt, err)
	}
	return err
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (retryable bool, err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return IsRetryable(err), fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return false, fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return IsRetryable(err), err
	}

	if err := tx.Commit(ctx); err != nil {
		// A commit lost on the wire may still have been applied; only
		// server-reported rollbacks are safe to re-run.
		return isRollbackReported(err), fmt.Errorf("commit transaction: %w", err)
	}

	return false, nil
}

func (m *TxManager) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = m.retry.InitialBackoff
	if m.retry.MaxBackoff > 0 {
		b.MaxInterval = m.retry.MaxBackoff
	}
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
