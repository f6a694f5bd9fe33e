package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookhive/bookhive-backend/internal/app"
	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

type promoter interface {
	Promote(ctx context.Context, email string) (*domain.Account, error)
}

// NewPromoteCommand grants the admin role to an existing account. This is
// how the first administrator is bootstrapped.
func NewPromoteCommand(opts *RootOptions) *cobra.Command {
	var email, actor string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to an account by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app.App, log *slog.Logger) error {
				ctx := policy.WithMaintenance(cmd.Context(), log, actor, "promote "+email)
				return runPromote(ctx, cmd.OutOrStdout(), a.Accounts, email)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the account to promote")
	cmd.Flags().StringVar(&actor, "actor", os.Getenv("USER"), "operator recorded in the maintenance log")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runPromote(ctx context.Context, out io.Writer, accounts promoter, email string) error {
	acc, err := accounts.Promote(ctx, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Account %s (%s) is admin.\n", acc.Email, acc.ID)
	return nil
}
