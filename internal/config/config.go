package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Retry    RetryConfig    `yaml:"retry"`
	Schema   SchemaConfig   `yaml:"schema"`
}

// ServerConfig holds operator HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every statement server side; 0 keeps the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AuthConfig holds the key shared with the presentation layer, which signs
// an HS256 identity assertion (sub, role) for every forwarded request.
type AuthConfig struct {
	AssertionSecret string        `yaml:"assertion_secret" env:"AUTH_ASSERTION_SECRET" env-required:"true"`
	Issuer          string        `yaml:"issuer"           env:"AUTH_ISSUER"           env-default:"bookhive-web"`
	ClockSkew       time.Duration `yaml:"clock_skew"       env:"AUTH_CLOCK_SKEW"       env-default:"30s"`
}

// RetryConfig bounds how often a transaction is re-run after a
// serialization failure or deadlock.
type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"    env:"RETRY_MAX_ATTEMPTS"    env-default:"3"`
	InitialBackoff time.Duration `yaml:"initial_backoff" env:"RETRY_INITIAL_BACKOFF" env-default:"20ms"`
	MaxBackoff     time.Duration `yaml:"max_backoff"     env:"RETRY_MAX_BACKOFF"     env-default:"250ms"`
}

// SchemaConfig holds drift detector settings.
type SchemaConfig struct {
	ProbeTimeout time.Duration `yaml:"probe_timeout" env:"SCHEMA_PROBE_TIMEOUT" env-default:"2s"`
}
