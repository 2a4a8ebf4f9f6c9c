package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ldforge/pkg/ldforge"
)

const modulePath = "github.com/mesh-intelligence/ldforge"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ldforge version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ldforge v%s\nmodule: %s\n", ldforge.Version, modulePath)
			return nil
		},
	}
}
