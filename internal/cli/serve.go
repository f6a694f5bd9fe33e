package cli

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bookhive/bookhive-backend/internal/app"
)

// NewServeCommand runs the operator HTTP surface until SIGINT or SIGTERM.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve health, schema and admin endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, log, err := load(opts)
			if err != nil {
				return err
			}
			log.Info("starting application",
				slog.String("version", app.BuildVersion()),
				slog.String("log_level", cfg.Log.Level),
			)
			return app.Run(ctx, *cfg, log)
		},
	}
}
