package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/dymensionxyz/tonshard/config"
	"github.com/dymensionxyz/tonshard/shard"
	"github.com/dymensionxyz/tonshard/topology"
	"github.com/dymensionxyz/tonshard/topology/registry"
	"github.com/dymensionxyz/tonshard/types"
)

var (
	tsconfig = config.DefaultConfig("")
	logger   = log.NewTMLogger(log.NewSyncWriter(os.Stderr))
)

// NewRootCmd returns the tonshard command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tonshard",
		Short:        "Find the shard of TON accounts and generate wallets inside a chosen shard",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// cmd.Flags() includes flags from this command and all persistent flags from the parent
			return viper.BindPFlags(cmd.Flags())
		},
	}
	cmd.PersistentFlags().String("log_level", config.DefaultLogLevel, "log level")

	cmd.AddCommand(
		InitFilesCmd,
		NewShardsCmd(),
		NewShardCmd(),
		NewGenerateCmd(),
		NewDeriveCmd(),
		VersionCmd,
	)
	return cmd
}

// ExitCode is the process status for an error returned by a command. An interrupted search exits like
// a process stopped by SIGINT.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, types.ErrSearchCancelled):
		return 130
	default:
		return 1
	}
}

// loadConfig reads the config of the home directory and sets up the logger accordingly.
func loadConfig(cmd *cobra.Command, args []string) error {
	homeDir := viper.GetString(cli.HomeFlag)
	tsconfig = config.DefaultConfig(homeDir)
	if err := tsconfig.GetViperConfig(cmd, homeDir); err != nil {
		return err
	}

	l, err := newLogger(tsconfig)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func newLogger(c *config.Config) (log.Logger, error) {
	l := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	if c.LogFormat == config.LogFormatJSON {
		l = log.NewTMJSONLogger(log.NewSyncWriter(os.Stderr))
	}

	l, err := tmflags.ParseLogLevel(c.LogLevel, l, config.DefaultLogLevel)
	if err != nil {
		return nil, err
	}

	if viper.GetBool(cli.TraceFlag) {
		l = log.NewTracingLogger(l)
	}

	return l.With("module", "main"), nil
}

// fetchTopology queries the configured provider for the active shards.
func fetchTopology(ctx context.Context) (shard.Topology, error) {
	p := registry.GetProvider(registry.Provider(tsconfig.TopologyProvider))
	if p == nil {
		return nil, fmt.Errorf("unknown topology provider %q", tsconfig.TopologyProvider)
	}
	if err := p.Init(tsconfig.TopologyConfig, logger.With("module", "topology")); err != nil {
		return nil, fmt.Errorf("init %s topology provider: %w", tsconfig.TopologyProvider, err)
	}
	if s, ok := p.(interface{ Stop() }); ok {
		defer s.Stop()
	}

	t, err := topology.Fetch(ctx, p)
	if err != nil {
		return nil, err
	}
	logger.Info("Fetched shard topology.", "provider", tsconfig.TopologyProvider, "shards", t)
	if err := t.Validate(); err != nil {
		logger.Error("Shard topology does not partition the address space.", "err", err)
	}
	return t, nil
}
