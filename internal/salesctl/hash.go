package salesctl

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/salesinsight/internal/server/auth"
	"github.com/dmitrijs2005/salesinsight/internal/server/models"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

type hashOptions struct {
	cost          int
	passwordStdin bool
	username      string
	fullName      string
	email         string
}

func newHashPasswordCmd() *cobra.Command {
	var o hashOptions

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print the bcrypt hash of a password.",
		Long: `Reads a password without echo and prints its bcrypt hash.

With --username the output is a complete users file entry instead of the bare
hash, ready to paste into the JSON array.`,
		Example: "salesctl hash-password\nsalesctl hash-password --username alice --email alice@example.com\necho secret | salesctl hash-password --password-stdin",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHashPassword(cmd, o)
		},
	}

	cmd.Flags().IntVar(&o.cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	cmd.Flags().BoolVar(&o.passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.Flags().StringVar(&o.username, "username", "", "emit a users file entry for this username")
	cmd.Flags().StringVar(&o.fullName, "full-name", "", "full name for the users file entry")
	cmd.Flags().StringVar(&o.email, "email", "", "email for the users file entry")

	return cmd
}

func runHashPassword(cmd *cobra.Command, o hashOptions) error {
	if o.cost < bcrypt.MinCost || o.cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	var (
		password string
		err      error
	)
	if o.passwordStdin {
		password, err = readPasswordLine(cmd.InOrStdin())
	} else {
		password, err = promptPassword(cmd.ErrOrStderr())
	}
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(password, o.cost)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.username == "" {
		_, err = fmt.Fprintln(out, hash)
		return err
	}

	entry := models.User{UserName: o.username, PasswordHash: hash, FullName: o.fullName, Email: o.email}
	b, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
