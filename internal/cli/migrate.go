package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	postgres "github.com/bookhive/bookhive-backend/internal/adapter/postgres"
)

type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	UpTo(ctx context.Context, version int64) ([]*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
}

// NewMigrateCommand groups the schema migration subcommands. They need a
// DSN whose role may alter the schema.
func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect schema migrations",
	}

	var to int64
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), opts, func(m migrator) error {
				return runMigrateUp(cmd.Context(), cmd.OutOrStdout(), m, to)
			})
		},
	}
	up.Flags().Int64Var(&to, "to", 0, "stop after this version (0 applies all)")

	status := &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), opts, func(m migrator) error {
				return runMigrateStatus(cmd.Context(), cmd.OutOrStdout(), m)
			})
		},
	}

	cmd.AddCommand(up, status)
	return cmd
}

func withMigrator(ctx context.Context, opts *RootOptions, fn func(m migrator) error) error {
	cfg, _, err := load(opts)
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck
	return fn(m)
}

func runMigrateUp(ctx context.Context, out io.Writer, m migrator, to int64) error {
	var (
		res []*goose.MigrationResult
		err error
	)
	if to > 0 {
		res, err = m.UpTo(ctx, to)
	} else {
		res, err = m.Up(ctx)
	}
	for _, r := range res {
		if r.Source == nil {
			continue
		}
		fmt.Fprintf(out, "applied %d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
	}
	if err != nil {
		return err
	}
	if len(res) == 0 {
		fmt.Fprintln(out, "no pending migrations")
	}
	return nil
}

func runMigrateStatus(ctx context.Context, out io.Writer, m migrator) error {
	st, err := m.Status(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
	for _, s := range st {
		if s.Source == nil {
			continue
		}
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", strconv.FormatInt(s.Source.Version, 10), s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}
