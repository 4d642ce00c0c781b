package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dymensionxyz/tonshard/topology"
	"github.com/dymensionxyz/tonshard/topology/registry"
	"github.com/dymensionxyz/tonshard/wallet"
)

const (
	// DefaultTonshardDir is the default directory for tonshard
	DefaultTonshardDir    = ".tonshard"
	DefaultConfigDirName  = "config"
	DefaultConfigFileName = "tonshard.toml"

	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

// Config stores tonshard configuration.
type Config struct {
	// RootDir is the home directory, it is not read from the config file
	RootDir string `mapstructure:"-"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// TopologyProvider names the source of the shard topology
	TopologyProvider string          `mapstructure:"topology_provider"`
	TopologyConfig   topology.Config `mapstructure:",squash"`
	SearchConfig     `mapstructure:",squash"`
	WalletConfig     wallet.Config          `mapstructure:",squash"`
	Instrumentation  *InstrumentationConfig `mapstructure:"instrumentation"`
}

// SearchConfig consists of the parameters of the targeted account search
type SearchConfig struct {
	// Workers is the number of concurrent generation loops
	Workers int `mapstructure:"search_workers"`
	// MaxAttempts stops the search after that many candidates. Zero searches until interrupted
	MaxAttempts uint64 `mapstructure:"search_max_attempts"`
	// ProgressInterval is how many attempts pass between progress log lines. Zero disables them
	ProgressInterval uint64 `mapstructure:"search_progress_interval"`
}

// GetViperConfig reads configuration parameters from Viper instance. A missing config file is not an
// error: defaults and flags are used instead.
func (c *Config) GetViperConfig(cmd *cobra.Command, homeDir string) error {
	v := viper.GetViper()

	EnsureRoot(homeDir, nil)
	v.SetConfigName("tonshard")
	v.AddConfigPath(homeDir)                                      // search root directory
	v.AddConfigPath(filepath.Join(homeDir, DefaultConfigDirName)) // search root directory /config

	// bind flags so we could override config file with flags
	err := BindFlags(cmd, v)
	if err != nil {
		return err
	}

	err = v.ReadInConfig()
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return err
	}

	err = v.Unmarshal(c)
	if err != nil {
		return err
	}
	c.RootDir = homeDir

	return c.Validate()
}

func (c Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	if err := c.validateTopology(); err != nil {
		return fmt.Errorf("topology: %w", err)
	}

	if err := c.SearchConfig.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if err := c.WalletConfig.Validate(); err != nil {
		return fmt.Errorf("wallet: %w", err)
	}

	if err := c.validateInstrumentation(); err != nil {
		return fmt.Errorf("instrumentation: %w", err)
	}

	return nil
}

func (c Config) validateLogging() error {
	if c.LogLevel == "" {
		return fmt.Errorf("log_level cannot be empty")
	}
	if c.LogFormat != LogFormatPlain && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("log_format must be %q or %q", LogFormatPlain, LogFormatJSON)
	}
	return nil
}

func (c Config) validateTopology() error {
	if registry.GetProvider(registry.Provider(c.TopologyProvider)) == nil {
		names := make([]string, 0)
		for _, p := range registry.RegisteredProviders() {
			names = append(names, string(p))
		}
		return fmt.Errorf("unknown topology_provider %q, choose from: %s", c.TopologyProvider, strings.Join(names, ", "))
	}
	if registry.Provider(c.TopologyProvider) == registry.Static && len(c.TopologyConfig.StaticShards) == 0 {
		return fmt.Errorf("static_shards cannot be empty for the static provider")
	}
	return c.TopologyConfig.Validate()
}

// Validate SearchConfig
func (c SearchConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("search_workers must be positive")
	}
	return nil
}

func (c Config) validateInstrumentation() error {
	if c.Instrumentation == nil {
		return nil
	}

	return c.Instrumentation.Validate()
}

// InstrumentationConfig defines the configuration for metrics reporting.
type InstrumentationConfig struct {
	// When true, Prometheus metrics are served under /metrics on
	// PrometheusListenAddr.
	Prometheus bool `mapstructure:"prometheus"`

	// Address to listen for Prometheus collector(s) connections.
	PrometheusListenAddr string `mapstructure:"prometheus_listen_addr"`
}

func (ic InstrumentationConfig) Validate() error {
	if ic.Prometheus && ic.PrometheusListenAddr == "" {
		return fmt.Errorf("PrometheusListenAddr cannot be empty")
	}

	return nil
}
