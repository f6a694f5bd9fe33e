// Package app wires configuration, storage and services into a runnable
// process. The cobra commands in internal/cli are thin shells around it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
	accountrepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/account"
	aggregaterepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/aggregate"
	discussionrepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/discussion"
	itemrepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/item"
	itemrequestrepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/itemrequest"
	readinglistrepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/readinglist"
	reportrepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/report"
	reviewrepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/review"
	"github.com/bookhive/bookhive-backend/internal/adapter/postgres/schemaprobe"
	statusrepo "github.com/bookhive/bookhive-backend/internal/adapter/postgres/status"
	"github.com/bookhive/bookhive-backend/internal/auth"
	"github.com/bookhive/bookhive-backend/internal/config"
	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/service/account"
	"github.com/bookhive/bookhive-backend/internal/service/aggregate"
	"github.com/bookhive/bookhive-backend/internal/service/catalog"
	"github.com/bookhive/bookhive-backend/internal/service/discussion"
	"github.com/bookhive/bookhive-backend/internal/service/itemrequest"
	"github.com/bookhive/bookhive-backend/internal/service/readinglist"
	"github.com/bookhive/bookhive-backend/internal/service/review"
	"github.com/bookhive/bookhive-backend/internal/service/schema"
	"github.com/bookhive/bookhive-backend/internal/service/shelf"
	"github.com/bookhive/bookhive-backend/internal/transport/rest"
)

// App holds the constructed services over one connection pool.
type App struct {
	cfg  config.Config
	log  *slog.Logger
	db   postgres.DB
	done func()

	Auth        *auth.Verifier
	Tx          *postgres.TxManager
	Schema      *schema.Detector
	Aggregates  *aggregate.Engine
	Accounts    *account.Service
	Catalog     *catalog.Service
	Reviews     *review.Service
	Lists       *readinglist.Service
	Shelf       *shelf.Service
	Discussions *discussion.Service
	Requests    *itemrequest.Service
}

// New connects to the database and builds every service.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	a := Build(pool, cfg, log)
	a.done = pool.Close
	return a, nil
}

// Build wires the services over an existing handle. The caller keeps
// ownership of db.
func Build(db postgres.DB, cfg config.Config, log *slog.Logger) *App {
	tx := postgres.NewTxManager(db, cfg.Retry, log)

	items := itemrepo.New(db)
	aggregates := aggregate.NewEngine(log, aggregaterepo.New(db), tx)
	detector := schema.NewDetector(log, schemaprobe.New(db), cfg.Schema)

	return &App{
		cfg:  cfg,
		log:  log,
		db:   db,
		done: func() {},

		Auth:        auth.NewVerifier(cfg.Auth),
		Tx:          tx,
		Schema:      detector,
		Aggregates:  aggregates,
		Accounts:    account.NewService(log, accountrepo.New(db), tx),
		Catalog:     catalog.NewService(log, items, tx),
		Reviews:     review.NewService(log, reviewrepo.New(db), reportrepo.New(db), items, aggregates, tx),
		Lists:       readinglist.NewService(log, readinglistrepo.New(db), tx),
		Shelf:       shelf.NewService(log, statusrepo.New(db), detector, tx),
		Discussions: discussion.NewService(log, discussionrepo.New(db), aggregates, tx),
		Requests:    itemrequest.NewService(log, itemrequestrepo.New(db)),
	}
}

// Close releases the connection pool if New opened it.
func (a *App) Close() {
	a.done()
}

// Handler returns the operator HTTP surface.
func (a *App) Handler() http.Handler {
	return rest.NewRouter(
		rest.NewHealthHandler(a.db, a.Schema, BuildVersion()),
		rest.NewAdminHandler(a.Reviews, a.Requests, a.Aggregates, a.log),
		a.Auth,
		a.log,
	)
}

// Serve runs the operator HTTP server until ctx is cancelled, then shuts
// it down within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	a.reportSchema(ctx)

	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		a.log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// reportSchema runs the startup drift check. A drifted schema does not
// stop the process; the notice is logged for the operator and served on
// /health/schema.
func (a *App) reportSchema(ctx context.Context) {
	health, err := a.Schema.CheckSchemaHealth(ctx)
	switch {
	case err != nil:
		a.log.WarnContext(ctx, "startup schema check unavailable", slog.String("error", err.Error()))
	case health.State == domain.SchemaStateDriftDetected:
		a.log.WarnContext(ctx, "starting with schema drift",
			slog.Any("missing", health.Notice.Missing),
			slog.String("notice", schema.FormatNotice(health.Notice)),
		)
	default:
		a.log.InfoContext(ctx, "schema healthy")
	}
}

// Run connects, serves until ctx is cancelled and closes the pool.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	a, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
