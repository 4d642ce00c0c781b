package topology

import (
	"errors"
	"fmt"
	"time"

	"github.com/dymensionxyz/tonshard/types"
)

const (
	// TestnetConfigURL is the global config of the public testnet liteservers.
	TestnetConfigURL = "https://ton-blockchain.github.io/testnet-global.config.json"
	// MainnetConfigURL is the global config of the public mainnet liteservers.
	MainnetConfigURL = "https://ton-blockchain.github.io/global.config.json"
)

// Config for the topology providers.
type Config struct {
	// GlobalConfigURL points to the liteserver global config.
	GlobalConfigURL string `mapstructure:"global_config_url"`
	// StaticShards is the topology served by the static provider, as hex shard ids.
	StaticShards []string `mapstructure:"static_shards"`
	// FetchTimeout bounds connecting and fetching the topology.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	// RetryAttempts is the number of attempts made against the network before giving up.
	RetryAttempts uint `mapstructure:"retry_attempts"`
	// RetryMinDelay is the delay before the first retry, doubled on every attempt.
	RetryMinDelay time.Duration `mapstructure:"retry_min_delay"`
	// RetryMaxDelay caps the delay between retries.
	RetryMaxDelay time.Duration `mapstructure:"retry_max_delay"`
}

// DefaultConfig returns the testnet configuration.
func DefaultConfig() Config {
	return Config{
		GlobalConfigURL: TestnetConfigURL,
		FetchTimeout:    30 * time.Second,
		RetryAttempts:   5,
		RetryMinDelay:   time.Second,
		RetryMaxDelay:   10 * time.Second,
	}
}

// Validate Config
func (c Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return errors.New("fetch_timeout must be positive")
	}
	if c.RetryAttempts == 0 {
		return errors.New("retry_attempts must be positive")
	}
	if c.RetryMaxDelay < c.RetryMinDelay {
		return fmt.Errorf("retry_max_delay cannot be less than retry_min_delay. retry_max_delay: %s retry_min_delay: %s", c.RetryMaxDelay, c.RetryMinDelay)
	}
	for _, s := range c.StaticShards {
		if _, err := types.ParseShardID(s); err != nil {
			return fmt.Errorf("static_shards: %w", err)
		}
	}
	return nil
}
