package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/crowdtank-deploy/internal/config"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of crowdtank-deploy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "crowdtank-deploy version %s (commit %s, built %s)\n",
				config.Version, config.Commit, config.Date)
			return err
		},
	}
}
