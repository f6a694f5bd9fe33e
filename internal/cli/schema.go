package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bookhive/bookhive-backend/internal/app"
	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/service/schema"
)

// ExitDrift is the schema-check exit code when drift is found.
const ExitDrift = 2

type schemaChecker interface {
	CheckSchemaHealth(ctx context.Context) (domain.SchemaHealth, error)
}

// NewSchemaCheckCommand probes the live schema and prints the remediation
// notice when it is behind. It exits 0 when healthy and 2 on drift.
func NewSchemaCheckCommand(opts *RootOptions) *cobra.Command {
	var printSQL bool

	cmd := &cobra.Command{
		Use:   "schema-check",
		Short: "Detect schema drift and print remediation steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printSQL {
				_, err := io.WriteString(cmd.OutOrStdout(), schema.RemediationSQL())
				return err
			}
			return withApp(cmd.Context(), opts, func(a *app.App, _ *slog.Logger) error {
				return runSchemaCheck(cmd.Context(), cmd.OutOrStdout(), a.Schema)
			})
		},
	}
	cmd.Flags().BoolVar(&printSQL, "print-sql", false, "print the remediation SQL without connecting")

	return cmd
}

func runSchemaCheck(ctx context.Context, out io.Writer, checker schemaChecker) error {
	health, err := checker.CheckSchemaHealth(ctx)
	if err != nil {
		return fmt.Errorf("schema check: %w", err)
	}
	if health.State != domain.SchemaStateDriftDetected {
		fmt.Fprintln(out, "Schema healthy.")
		return nil
	}

	fmt.Fprint(out, schema.FormatNotice(health.Notice))
	return &ExitError{Code: ExitDrift, Err: fmt.Errorf("schema drift: %d missing columns", len(health.Notice.Missing))}
}
