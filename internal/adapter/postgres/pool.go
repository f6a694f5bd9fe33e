package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookhive/bookhive-backend/internal/config"
)

// applicationName tags every session in pg_stat_activity unless the DSN
// already names one.
const applicationName = "bookhive"

// NewPool opens the serving pool and pings it so a bad DSN fails at start.
// The serving role needs only data privileges.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// poolConfig maps DatabaseConfig onto pgxpool settings. Session parameters
// given in the DSN win over the ones set here.
func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	params := poolCfg.ConnConfig.RuntimeParams
	setDefault := func(key, value string) {
		if _, ok := params[key]; !ok {
			params[key] = value
		}
	}
	setDefault("application_name", applicationName)
	// A statement stuck behind a lock fails with 57014 instead of holding
	// the caller past its deadline.
	if cfg.StatementTimeout > 0 {
		setDefault("statement_timeout", strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10))
	}

	return poolCfg, nil
}
