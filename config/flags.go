package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	FlagLogFormat        = "log_format"
	FlagTopologyProvider = "tonshard.topology_provider"
	FlagGlobalConfigURL  = "tonshard.global_config_url"
	FlagStaticShards     = "tonshard.static_shards"
	FlagFetchTimeout     = "tonshard.fetch_timeout"
	FlagRetryAttempts    = "tonshard.retry_attempts"
)

const (
	FlagSearchWorkers          = "tonshard.search_workers"
	FlagSearchMaxAttempts      = "tonshard.search_max_attempts"
	FlagSearchProgressInterval = "tonshard.search_progress_interval"
)

const (
	FlagWalletVersion    = "tonshard.wallet_version"
	FlagWalletSubwallet  = "tonshard.wallet_subwallet"
	FlagMnemonicWords    = "tonshard.mnemonic_words"
	FlagWalletTestnet    = "tonshard.wallet_testnet"
	FlagWalletBounceable = "tonshard.wallet_bounceable"
	FlagPrometheus       = "tonshard.instrumentation.prometheus"
)

// AddFlags adds tonshard specific configuration options to cobra Command.
//
// Every command that loads the config through GetViperConfig needs them.
func AddFlags(cmd *cobra.Command) {
	def := DefaultConfig("")

	cmd.Flags().String(FlagLogFormat, def.LogFormat, "log format (plain or json)")
	cmd.Flags().String(FlagTopologyProvider, def.TopologyProvider, "shard topology source (liteclient or static)")
	cmd.Flags().String(FlagGlobalConfigURL, def.TopologyConfig.GlobalConfigURL, "liteserver global config URL")
	cmd.Flags().StringSlice(FlagStaticShards, def.TopologyConfig.StaticShards, "shard ids (hex) served by the static provider")
	cmd.Flags().Duration(FlagFetchTimeout, def.TopologyConfig.FetchTimeout, "timeout for fetching the shard topology")
	cmd.Flags().Uint(FlagRetryAttempts, def.TopologyConfig.RetryAttempts, "attempts made against liteservers before giving up")

	cmd.Flags().Int(FlagSearchWorkers, def.Workers, "concurrent account generation loops")
	cmd.Flags().Uint64(FlagSearchMaxAttempts, def.MaxAttempts, "give up after that many candidates (0 for no limit)")
	cmd.Flags().Uint64(FlagSearchProgressInterval, def.ProgressInterval, "attempts between progress log lines (0 to disable)")

	cmd.Flags().String(FlagWalletVersion, def.WalletConfig.Version, "wallet contract version (v3r1, v3r2, v4r2)")
	cmd.Flags().Uint32(FlagWalletSubwallet, def.WalletConfig.Subwallet, "wallet subwallet id")
	cmd.Flags().Int(FlagMnemonicWords, def.WalletConfig.MnemonicWords, "number of words of generated mnemonics")
	cmd.Flags().Bool(FlagWalletTestnet, def.WalletConfig.Testnet, "render user-friendly addresses as testnet only")
	cmd.Flags().Bool(FlagWalletBounceable, def.WalletConfig.Bounceable, "render user-friendly addresses as bounceable")
	cmd.Flags().Bool(FlagPrometheus, def.Instrumentation.Prometheus, "serve prometheus metrics")
}

// BindFlags binds the flags added by AddFlags to their config keys.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	bindings := [][2]string{
		{"log_format", FlagLogFormat},
		{"topology_provider", FlagTopologyProvider},
		{"global_config_url", FlagGlobalConfigURL},
		{"static_shards", FlagStaticShards},
		{"fetch_timeout", FlagFetchTimeout},
		{"retry_attempts", FlagRetryAttempts},
		{"search_workers", FlagSearchWorkers},
		{"search_max_attempts", FlagSearchMaxAttempts},
		{"search_progress_interval", FlagSearchProgressInterval},
		{"wallet_version", FlagWalletVersion},
		{"wallet_subwallet", FlagWalletSubwallet},
		{"mnemonic_words", FlagMnemonicWords},
		{"wallet_testnet", FlagWalletTestnet},
		{"wallet_bounceable", FlagWalletBounceable},
		{"instrumentation.prometheus", FlagPrometheus},
	}
	for _, b := range bindings {
		if err := v.BindPFlag(b[0], cmd.Flags().Lookup(b[1])); err != nil {
			return err
		}
	}
	return nil
}
