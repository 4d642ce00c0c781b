package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dymensionxyz/tonshard/config"
)

// NewShardsCmd returns the command listing the active basechain shards.
func NewShardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shards",
		Short:   "List the active basechain shards",
		Args:    cobra.NoArgs,
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := fetchTopology(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range t {
				fmt.Fprintf(out, "%s\tprefix=%s\texpected_attempts=%d\n", s, s.Prefix(), s.ExpectedAttempts())
			}
			return nil
		},
	}

	config.AddFlags(cmd)
	return cmd
}
