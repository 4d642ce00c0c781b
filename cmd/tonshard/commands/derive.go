package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dymensionxyz/tonshard/config"
	"github.com/dymensionxyz/tonshard/shard"
	"github.com/dymensionxyz/tonshard/wallet"
)

// NewDeriveCmd returns the command deriving the address of an existing mnemonic and its shard.
func NewDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "derive <word>...",
		Short:   "Derive the wallet address of a mnemonic and print its shard",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := wallet.NewGenerator(tsconfig.WalletConfig)
			if err != nil {
				return err
			}
			// a quoted phrase is accepted as well as separate words
			c, err := gen.FromMnemonic(strings.Fields(strings.Join(args, " ")))
			if err != nil {
				return err
			}

			t, err := fetchTopology(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Address:   %s\n", c.Address)
			fmt.Fprintf(out, "Raw:       %s\n", c.AccountID)
			if s, ok := shard.FindShard(t, c.AccountID); ok {
				fmt.Fprintf(out, "Shard:     %s\n", s)
			} else {
				fmt.Fprintln(out, "Shard:     Not found")
			}
			return nil
		},
	}

	config.AddFlags(cmd)
	return cmd
}
