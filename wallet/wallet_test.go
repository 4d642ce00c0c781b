package wallet_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	"github.com/xssnick/tonutils-go/address"

	"github.com/dymensionxyz/tonshard/shard"
	"github.com/dymensionxyz/tonshard/types"
	"github.com/dymensionxyz/tonshard/wallet"
)

var fixedMnemonic = strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art")

func TestNewMnemonic(t *testing.T) {
	for _, n := range []int{12, 24} {
		words, err := wallet.NewMnemonic(n)
		require.NoError(t, err)
		assert.Len(t, words, n)
		assert.True(t, bip39.IsMnemonicValid(strings.Join(words, " ")))
	}
}

func TestKeyFromMnemonic(t *testing.T) {
	k1 := wallet.KeyFromMnemonic(fixedMnemonic, "")
	k2 := wallet.KeyFromMnemonic(fixedMnemonic, "")
	assert.Equal(t, k1, k2)

	assert.NotEqual(t, k1, wallet.KeyFromMnemonic(fixedMnemonic, "secret"))
	assert.NotEqual(t, k1, wallet.KeyFromMnemonic(fixedMnemonic[1:], ""))
}

func TestGeneratorFromMnemonic(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := wallet.NewGenerator(wallet.DefaultConfig())
	require.NoError(err)

	c, err := g.FromMnemonic(fixedMnemonic)
	require.NoError(err)
	assert.Equal(fixedMnemonic, c.Mnemonic)
	assert.Equal(int32(0), c.Workchain)
	assert.True(strings.HasPrefix(c.AccountID, "0:"))

	_, err = types.ParseAccountID(c.AccountID)
	require.NoError(err)

	friendly, err := address.ParseAddr(c.Address)
	require.NoError(err)
	raw, err := wallet.ParseAddress(friendly.String())
	require.NoError(err)
	assert.Equal(c.AccountID, raw)

	again, err := g.FromMnemonic(fixedMnemonic)
	require.NoError(err)
	assert.Equal(c, again)
}

func TestGeneratorVersionsDiffer(t *testing.T) {
	seen := map[string]string{}
	for _, v := range wallet.SupportedVersions() {
		cfg := wallet.DefaultConfig()
		cfg.Version = v
		g, err := wallet.NewGenerator(cfg)
		require.NoError(t, err)

		c, err := g.FromMnemonic(fixedMnemonic)
		require.NoError(t, err)
		prev, dup := seen[c.AccountID]
		assert.False(t, dup, "%s and %s derive the same address", v, prev)
		seen[c.AccountID] = v
	}
}

func TestGeneratorLandsInTopology(t *testing.T) {
	g, err := wallet.NewGenerator(wallet.DefaultConfig())
	require.NoError(t, err)
	top := shard.Topology{0x4000000000000000, 0xC000000000000000}

	for i := 0; i < 3; i++ {
		c, err := g.Generate(context.Background())
		require.NoError(t, err)
		assert.Len(t, c.Mnemonic, wallet.DefaultMnemonicWords)

		_, ok := shard.FindShard(top, c.AccountID)
		assert.True(t, ok)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		malleate func(*wallet.Config)
		wantErr  assert.ErrorAssertionFunc
	}{
		{
			name:    "default",
			wantErr: assert.NoError,
		}, {
			name:     "upper case version",
			malleate: func(c *wallet.Config) { c.Version = "V3R2" },
			wantErr:  assert.NoError,
		}, {
			name:     "unknown version",
			malleate: func(c *wallet.Config) { c.Version = "v9" },
			wantErr:  assert.Error,
		}, {
			name:     "odd mnemonic length",
			malleate: func(c *wallet.Config) { c.MnemonicWords = 13 },
			wantErr:  assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := wallet.DefaultConfig()
			if tt.malleate != nil {
				tt.malleate(&cfg)
			}
			tt.wantErr(t, cfg.Validate())
		})
	}
}

func TestParseAddress(t *testing.T) {
	raw := "-1:af78316b56ee5f7e88f3558ad3b5ebbafd49304249e48dd33c9f27e63b7c8fe7"
	got, err := wallet.ParseAddress(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	got, err = wallet.ParseAddress("AF78316B56EE5F7E88F3558AD3B5EBBAFD49304249E48DD33C9F27E63B7C8FE7")
	require.NoError(t, err)
	assert.Equal(t, "0:af78316b56ee5f7e88f3558ad3b5ebbafd49304249e48dd33c9f27e63b7c8fe7", got)

	_, err = wallet.ParseAddress("garbage")
	assert.ErrorIs(t, err, types.ErrMalformedIdentifier)
}
