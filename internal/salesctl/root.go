package salesctl

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the salesctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "salesctl",
		Short:        "Admin tool for the sales data server.",
		SilenceUsage: true,
	}
	root.AddCommand(newHashPasswordCmd(), newSeedUsersCmd())
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
