package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxProbeTimeout    = 10 * time.Second
	minSecretLength    = 32
	maxAssertionLeeway = 5 * time.Minute
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Retry.validate(); err != nil {
		return fmt.Errorf("retry: %w", err)
	}

	if c.Schema.ProbeTimeout <= 0 || c.Schema.ProbeTimeout > maxProbeTimeout {
		return fmt.Errorf("schema.probe_timeout must be in (0, %s] (got %s)", maxProbeTimeout, c.Schema.ProbeTimeout)
	}

	return nil
}

func (r *RetryConfig) validate() error {
	if r.MaxAttempts < 1 || r.MaxAttempts > 5 {
		return fmt.Errorf("max_attempts must be between 1 and 5 (got %d)", r.MaxAttempts)
	}
	if r.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be > 0 (got %s)", r.InitialBackoff)
	}
	if r.MaxBackoff < r.InitialBackoff {
		return fmt.Errorf("max_backoff (%s) must be >= initial_backoff (%s)", r.MaxBackoff, r.InitialBackoff)
	}
	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.AssertionSecret) < minSecretLength {
		return fmt.Errorf("assertion_secret must be at least %d characters", minSecretLength)
	}
	if strings.TrimSpace(a.Issuer) == "" {
		return fmt.Errorf("issuer is required")
	}
	if a.ClockSkew < 0 || a.ClockSkew > maxAssertionLeeway {
		return fmt.Errorf("clock_skew must be in [0, %s] (got %s)", maxAssertionLeeway, a.ClockSkew)
	}
	return nil
}
