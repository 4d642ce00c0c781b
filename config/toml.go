package config

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	tmos "github.com/tendermint/tendermint/libs/os"
)

// DefaultDirPerm is the default permissions used when creating directories.
const DefaultDirPerm = 0o700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate").Funcs(template.FuncMap{
		"QuoteJoin": quoteJoin,
	})
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// quoteJoin renders a string slice as the body of a toml array.
func quoteJoin(elems []string) string {
	quoted := make([]string, len(elems))
	for i, e := range elems {
		quoted[i] = strconv.Quote(e)
	}
	return strings.Join(quoted, ", ")
}

// EnsureRoot creates the root and config directories if they don't exist,
// and panics if it fails.
func EnsureRoot(rootDir string, defaultConfig *Config) {
	if err := tmos.EnsureDir(rootDir, DefaultDirPerm); err != nil {
		panic(err.Error())
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, DefaultConfigDirName), DefaultDirPerm); err != nil {
		panic(err.Error())
	}

	if defaultConfig == nil {
		return
	}

	configFilePath := ConfigFilePath(rootDir)

	// Write default config file if missing.
	if !tmos.FileExists(configFilePath) {
		WriteConfigFile(configFilePath, defaultConfig)
	}
}

// ConfigFilePath is where EnsureRoot writes the config file of rootDir.
func ConfigFilePath(rootDir string) string {
	return filepath.Join(rootDir, DefaultConfigDirName, DefaultConfigFileName)
}

// WriteConfigFile renders config using the template and writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *Config) {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, config); err != nil {
		panic(err)
	}

	tmos.MustWriteFile(configFilePath, buffer.Bytes(), 0o644)
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go
const defaultConfigTemplate = `
#######################################################
###       Tonshard Configuration Options            ###
#######################################################
log_level = "{{ .LogLevel }}"
log_format = "{{ .LogFormat }}" # plain, json

### topology config ###
topology_provider = "{{ .TopologyProvider }}" # liteclient, static

# liteserver global config, testnet by default
# mainnet: https://ton-blockchain.github.io/global.config.json
global_config_url = "{{ .TopologyConfig.GlobalConfigURL }}"

# shard ids (hex) used by the static provider
static_shards = [{{ QuoteJoin .TopologyConfig.StaticShards }}]

fetch_timeout = "{{ .TopologyConfig.FetchTimeout }}"
retry_attempts = {{ .TopologyConfig.RetryAttempts }}
retry_min_delay = "{{ .TopologyConfig.RetryMinDelay }}"
retry_max_delay = "{{ .TopologyConfig.RetryMaxDelay }}"

### search config ###
search_workers = {{ .SearchConfig.Workers }}
# 0 searches until interrupted
search_max_attempts = {{ .SearchConfig.MaxAttempts }}
# attempts between progress log lines, 0 disables them
search_progress_interval = {{ .SearchConfig.ProgressInterval }}

### wallet config ###
wallet_version = "{{ .WalletConfig.Version }}" # v3r1, v3r2, v4r2
wallet_subwallet = {{ .WalletConfig.Subwallet }}
mnemonic_words = {{ .WalletConfig.MnemonicWords }}
mnemonic_password = "{{ .WalletConfig.Password }}"
wallet_testnet = {{ .WalletConfig.Testnet }}
wallet_bounceable = {{ .WalletConfig.Bounceable }}

#######################################################
###       Instrumentation Configuration Options     ###
#######################################################
[instrumentation]

# When true, Prometheus metrics are served under /metrics on
# PrometheusListenAddr while generating.
prometheus = {{ .Instrumentation.Prometheus }}

# Address to listen for Prometheus collector(s) connections
prometheus_listen_addr = "{{ .Instrumentation.PrometheusListenAddr }}"
`
