package wallet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xssnick/tonutils-go/ton/wallet"
)

const (
	DefaultVersion       = "v4r2"
	DefaultMnemonicWords = 24
)

var versions = map[string]wallet.Version{
	"v3r1": wallet.V3R1,
	"v3r2": wallet.V3R2,
	"v4r2": wallet.V4R2,
}

var mnemonicLengths = []int{12, 15, 18, 21, 24}

// Config for the candidate generator.
type Config struct {
	// Version is the wallet contract the address is derived for.
	Version string `mapstructure:"wallet_version"`
	// Subwallet is the wallet id stored in the contract data.
	Subwallet uint32 `mapstructure:"wallet_subwallet"`
	// MnemonicWords is the length of the generated recovery phrase.
	MnemonicWords int `mapstructure:"mnemonic_words"`
	// Password is mixed into the key derivation. Most wallets leave it empty.
	Password string `mapstructure:"mnemonic_password"`
	// Testnet marks user-friendly addresses as testnet only.
	Testnet bool `mapstructure:"wallet_testnet"`
	// Bounceable sets the bounce flag of user-friendly addresses.
	Bounceable bool `mapstructure:"wallet_bounceable"`
}

// DefaultConfig returns the generator config used by wallet apps for new accounts.
func DefaultConfig() Config {
	return Config{
		Version:       DefaultVersion,
		Subwallet:     wallet.DefaultSubwallet,
		MnemonicWords: DefaultMnemonicWords,
		Bounceable:    false,
	}
}

// Validate Config
func (c Config) Validate() error {
	if _, ok := versions[strings.ToLower(c.Version)]; !ok {
		return fmt.Errorf("unsupported wallet_version %q, choose from: %s", c.Version, strings.Join(SupportedVersions(), ", "))
	}
	if !slices.Contains(mnemonicLengths, c.MnemonicWords) {
		return fmt.Errorf("mnemonic_words must be one of %v", mnemonicLengths)
	}
	return nil
}

// SupportedVersions lists the wallet versions addresses can be derived for.
func SupportedVersions() []string {
	ret := make([]string, 0, len(versions))
	for v := range versions {
		ret = append(ret, v)
	}
	slices.Sort(ret)
	return ret
}
