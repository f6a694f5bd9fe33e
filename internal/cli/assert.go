package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bookhive/bookhive-backend/internal/auth"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

const maxAssertionTTL = time.Hour

type assertionSigner interface {
	Sign(id auth.Identity, ttl time.Duration) (string, error)
}

// NewAssertCommand mints a short-lived identity assertion for calling the
// operator endpoints, e.g. curl -H "Authorization: Bearer $(bookhive assert ...)".
// It needs the shared key but no database.
func NewAssertCommand(opts *RootOptions) *cobra.Command {
	var (
		accountID string
		role      string
		ttl       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "assert",
		Short: "Print a signed identity assertion for the operator endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := load(opts)
			if err != nil {
				return err
			}
			return runAssert(cmd.OutOrStdout(), auth.NewVerifier(cfg.Auth), accountID, role, ttl)
		},
	}
	cmd.Flags().StringVar(&accountID, "account", "", "account id to assert")
	cmd.Flags().StringVar(&role, "role", domain.UserRoleAdmin.String(), "role claim (user or admin)")
	cmd.Flags().DurationVar(&ttl, "ttl", 5*time.Minute, "assertion lifetime")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func runAssert(out io.Writer, signer assertionSigner, accountID, role string, ttl time.Duration) error {
	id, err := uuid.Parse(accountID)
	if err != nil || id == uuid.Nil {
		return domain.NewValidationError("account", "must be an account id")
	}
	r := domain.UserRole(role)
	if !r.IsValid() {
		return domain.NewValidationError("role", "must be one of: user admin")
	}
	if ttl <= 0 || ttl > maxAssertionTTL {
		return domain.NewValidationError("ttl", fmt.Sprintf("must be in (0, %s]", maxAssertionTTL))
	}

	token, err := signer.Sign(auth.Identity{AccountID: id, Role: r}, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}
