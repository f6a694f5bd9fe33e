package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bookhive/bookhive-backend/internal/app"
	"github.com/bookhive/bookhive-backend/internal/service/aggregate"
)

type reconciler interface {
	Reconcile(ctx context.Context) (aggregate.ReconcileResult, error)
}

// NewReconcileCommand recomputes every stored rating and reply count from
// the underlying rows.
func NewReconcileCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Repair stale rating and reply-count aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app.App, _ *slog.Logger) error {
				return runReconcile(cmd.Context(), cmd.OutOrStdout(), a.Aggregates)
			})
		},
	}
}

func runReconcile(ctx context.Context, out io.Writer, r reconciler) error {
	res, err := r.Reconcile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "repaired %d items, %d discussions\n", res.Items, res.Discussions)
	return nil
}
