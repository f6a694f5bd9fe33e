// Package cli holds the cobra commands of the bookhive binary. Each
// command loads configuration, builds what it needs from internal/app and
// delegates to a small run function that tests drive with fakes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bookhive/bookhive-backend/internal/app"
	"github.com/bookhive/bookhive-backend/internal/config"
)

// ExitError carries a process exit code other than 1.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the bookhive command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "bookhive",
		Short:         "Book community persistence core",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config.yaml (overrides CONFIG_PATH)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSchemaCheckCommand(opts))
	cmd.AddCommand(NewPromoteCommand(opts))
	cmd.AddCommand(NewReconcileCommand(opts))
	cmd.AddCommand(NewAssertCommand(opts))

	return cmd
}

// load reads configuration and builds the process logger. --config wins
// over CONFIG_PATH.
func load(opts *RootOptions) (*config.Config, *slog.Logger, error) {
	loadFn := config.Load
	if opts.ConfigPath != "" {
		loadFn = func() (*config.Config, error) { return config.LoadFile(opts.ConfigPath) }
	}
	cfg, err := loadFn()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(nil, cfg.Log), nil
}

// withApp builds the application for a one-shot command and closes it
// afterwards.
func withApp(ctx context.Context, opts *RootOptions, fn func(a *app.App, log *slog.Logger) error) error {
	cfg, log, err := load(opts)
	if err != nil {
		return err
	}
	a, err := app.New(ctx, *cfg, log)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer a.Close()
	return fn(a, log)
}
