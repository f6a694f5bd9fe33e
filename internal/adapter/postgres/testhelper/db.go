package testhelper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bookhive/bookhive-backend/internal/adapter/postgres"
)

var (
	once      sync.Once
	sharedDSN string
	adminDSN  string
	initErr   error
)

// SetupTestDB starts a shared PostgreSQL container (once for the entire test run),
// applies goose migrations, and returns a new pgxpool.Pool connected to it.
// The pool is closed via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ensureContainer(t)
	return connect(t, sharedDSN)
}

// SetupIsolatedDB creates a fresh database in the shared container migrated
// up to version (0 means all migrations). Use it for tests that alter the
// schema and must not disturb the shared database.
func SetupIsolatedDB(t *testing.T, version int64) *pgxpool.Pool {
	t.Helper()

	ensureContainer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	name := "iso_" + strings.ReplaceAll(uuid.NewString()[:13], "-", "")

	admin, err := pgxpool.New(ctx, adminDSN)
	if err != nil {
		t.Fatalf("testhelper: connect admin db: %v", err)
	}
	defer admin.Close()

	if _, err := admin.Exec(ctx, "CREATE DATABASE "+name); err != nil {
		t.Fatalf("testhelper: create database %s: %v", name, err)
	}

	dsn := strings.Replace(adminDSN, "/testdb?", "/"+name+"?", 1)
	if err := migrate(ctx, dsn, version); err != nil {
		t.Fatalf("testhelper: migrate %s: %v", name, err)
	}

	return connect(t, dsn)
}

func ensureContainer(t *testing.T) {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
		adminDSN = sharedDSN
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}
}

func connect(t *testing.T, dsn string) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	if err := migrate(ctx, dsn, 0); err != nil {
		return "", err
	}

	return dsn, nil
}

func migrate(ctx context.Context, dsn string, version int64) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if version > 0 {
		_, err = m.UpTo(ctx, version)
	} else {
		_, err = m.Up(ctx)
	}
	return err
}
