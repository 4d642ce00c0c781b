package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dymensionxyz/tonshard/version"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.BuildVersion)
	},
}
