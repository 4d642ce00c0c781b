package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dymensionxyz/tonshard/config"
	"github.com/dymensionxyz/tonshard/search"
	"github.com/dymensionxyz/tonshard/types"
	"github.com/dymensionxyz/tonshard/wallet"
)

const flagShard = "shard"

// NewGenerateCmd returns the command generating wallets until one lands in the requested shard.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a wallet whose address belongs to the given shard",
		Args:    cobra.NoArgs,
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			shardFlag, err := cmd.Flags().GetString(flagShard)
			if err != nil {
				return err
			}
			target, err := types.ParseShardID(shardFlag)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := generate(ctx, target)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().String(flagShard, "", "target shard id in hex, as printed by the shards command")
	_ = cmd.MarkFlagRequired(flagShard)
	config.AddFlags(cmd)
	return cmd
}

func generate(ctx context.Context, target types.ShardID) (*search.Result, error) {
	t, err := fetchTopology(ctx)
	if err != nil {
		return nil, err
	}

	gen, err := wallet.NewGenerator(tsconfig.WalletConfig)
	if err != nil {
		return nil, err
	}

	s, err := search.NewSearcher(t, target, gen,
		search.WithLogger(logger.With("module", "search")),
		search.WithWorkers(tsconfig.Workers),
		search.WithMaxAttempts(tsconfig.MaxAttempts),
		search.WithProgressInterval(tsconfig.ProgressInterval),
	)
	if err != nil {
		return nil, err
	}

	metricsCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := startPrometheusServer(metricsCtx, tsconfig.Instrumentation); err != nil {
			logger.Error("Stopping prometheus server.", "error", err)
		}
	}()

	return s.Run(ctx)
}

func printResult(out io.Writer, res *search.Result) {
	fmt.Fprintf(out, "Address:   %s\n", res.Address)
	fmt.Fprintf(out, "Raw:       %s\n", res.AccountID)
	fmt.Fprintf(out, "Shard:     %s\n", res.Shard)
	fmt.Fprintf(out, "Mnemonic:  %s\n", strings.Join(res.Mnemonic, " "))
	fmt.Fprintf(out, "Attempts:  %d\n", res.Attempts)
	fmt.Fprintf(out, "Elapsed:   %s\n", res.Elapsed)
}
