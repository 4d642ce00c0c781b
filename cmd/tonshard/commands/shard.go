package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dymensionxyz/tonshard/config"
	"github.com/dymensionxyz/tonshard/shard"
	"github.com/dymensionxyz/tonshard/wallet"
)

// NewShardCmd returns the command printing the shard an account currently belongs to.
func NewShardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shard <address>",
		Short:   "Print the shard of a raw or user-friendly address",
		Args:    cobra.ExactArgs(1),
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := wallet.ParseAddress(args[0])
			if err != nil {
				return err
			}

			t, err := fetchTopology(cmd.Context())
			if err != nil {
				return err
			}

			s, ok := shard.FindShard(t, raw)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Shard: Not found")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shard: %s\n", s)
			return nil
		},
	}

	config.AddFlags(cmd)
	return cmd
}
