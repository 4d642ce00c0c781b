package config

import (
	"runtime"

	"github.com/dymensionxyz/tonshard/topology"
	"github.com/dymensionxyz/tonshard/topology/registry"
	"github.com/dymensionxyz/tonshard/wallet"
)

const (
	DefaultLogLevel = "info"

	DefaultProgressInterval = 1000
)

// DefaultConfig returns a default configuration for tonshard.
func DefaultConfig(home string) *Config {
	return &Config{
		RootDir:          home,
		LogLevel:         DefaultLogLevel,
		LogFormat:        LogFormatPlain,
		TopologyProvider: string(registry.LiteClient),
		TopologyConfig:   topology.DefaultConfig(),
		SearchConfig: SearchConfig{
			Workers:          runtime.NumCPU(),
			MaxAttempts:      0,
			ProgressInterval: DefaultProgressInterval,
		},
		WalletConfig: wallet.DefaultConfig(),
		Instrumentation: &InstrumentationConfig{
			Prometheus:           false,
			PrometheusListenAddr: ":2112",
		},
	}
}
