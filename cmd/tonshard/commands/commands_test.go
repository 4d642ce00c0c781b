package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/dymensionxyz/tonshard/config"
	"github.com/dymensionxyz/tonshard/types"
)

const quarters = "2000000000000000,6000000000000000,a000000000000000,e000000000000000"

// execute runs the tonshard command line against a fresh home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCmd()
	cli.PrepareBaseCmd(root, "TS", t.TempDir())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// executeStatic runs a command that loads the config, serving shards from the static provider.
func executeStatic(t *testing.T, shards string, args ...string) (string, error) {
	t.Helper()
	return execute(t, append(args,
		"--"+config.FlagTopologyProvider, "static",
		"--"+config.FlagStaticShards, shards,
		"--log_level", "error",
	)...)
}

func TestShardsCmd(t *testing.T) {
	out, err := executeStatic(t, quarters, "shards")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "2000000000000000\tprefix=00\texpected_attempts=4", lines[0])
	assert.Equal(t, "e000000000000000\tprefix=11\texpected_attempts=4", lines[3])
}

func TestShardsCmdSkipsMasterchainShard(t *testing.T) {
	out, err := executeStatic(t, "8000000000000000,4000000000000000,c000000000000000", "shards")
	require.NoError(t, err)

	assert.NotContains(t, out, "8000000000000000")
	assert.Contains(t, out, "4000000000000000\tprefix=0\texpected_attempts=2")
}

func TestShardCmd(t *testing.T) {
	testCases := []struct {
		name    string
		shards  string
		address string
		want    string
	}{
		{
			name:    "raw address",
			shards:  quarters,
			address: "0:7f" + strings.Repeat("0", 62),
			want:    "Shard: 6000000000000000",
		},
		{
			name:    "raw address without workchain",
			shards:  quarters,
			address: "c1" + strings.Repeat("ab", 31),
			want:    "Shard: e000000000000000",
		},
		{
			name:    "uncovered account",
			shards:  "2000000000000000,6000000000000000",
			address: "0:ff" + strings.Repeat("0", 62),
			want:    "Shard: Not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeStatic(t, tc.shards, "shard", tc.address)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strings.TrimSpace(out))
		})
	}
}

func TestShardCmdMalformedAddress(t *testing.T) {
	_, err := executeStatic(t, quarters, "shard", "0:abc")
	assert.ErrorIs(t, err, types.ErrMalformedIdentifier)
}

func TestGenerateCmd(t *testing.T) {
	out, err := executeStatic(t, quarters, "generate", "--shard", "0xA000000000000000", "--"+config.FlagSearchWorkers, "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Shard:     a000000000000000")
	var raw string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Raw:") {
			raw = strings.TrimSpace(strings.TrimPrefix(line, "Raw:"))
		}
		if strings.HasPrefix(line, "Mnemonic:") {
			assert.Len(t, strings.Fields(strings.TrimPrefix(line, "Mnemonic:")), 24)
		}
	}
	id, err := types.ParseAccountID(raw)
	require.NoError(t, err)
	assert.True(t, types.ShardID(0xa000000000000000).Contains(id.Top64()))
}

func TestGenerateCmdUnknownShard(t *testing.T) {
	for _, shardArg := range []string{"1000000000000000", "8000000000000000"} {
		_, err := executeStatic(t, quarters, "generate", "--shard", shardArg)
		var unknown *types.ErrUnknownShard
		require.True(t, errors.As(err, &unknown), "shard %s: %v", shardArg, err)
		assert.Len(t, unknown.Valid, 4)
		assert.Contains(t, err.Error(), "Choose from: 2000000000000000, 6000000000000000")
		assert.Equal(t, 1, ExitCode(err))
	}
}

func TestGenerateCmdExhausted(t *testing.T) {
	// a single attempt either lands in the 1/8 shard or exhausts the search
	_, err := executeStatic(t, "1000000000000000,3000000000000000,6000000000000000,a000000000000000,e000000000000000",
		"generate", "--shard", "1000000000000000",
		"--"+config.FlagSearchMaxAttempts, "1", "--"+config.FlagSearchWorkers, "1")
	if err != nil {
		assert.ErrorIs(t, err, types.ErrSearchExhausted)
	}
}

func TestDeriveCmd(t *testing.T) {
	words := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	out, err := executeStatic(t, quarters, "derive", words)
	require.NoError(t, err)

	assert.Contains(t, out, "Address:")
	assert.Contains(t, out, "Raw:       0:")
	assert.Regexp(t, `Shard:     [26ae]000000000000000`, out)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "<version>", strings.TrimSpace(out))
}

func TestInitCmd(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	root := NewRootCmd()
	cli.PrepareBaseCmd(root, "TS", home)
	root.SetArgs([]string{"init"})
	require.NoError(t, root.Execute())

	assert.FileExists(t, config.ConfigFilePath(home))
}

func TestGenerateCmdInterrupted(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCmd()
	cli.PrepareBaseCmd(root, "TS", t.TempDir())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"generate", "--shard", "2000000000000000",
		"--" + config.FlagTopologyProvider, "static",
		"--" + config.FlagStaticShards, quarters,
		"--log_level", "error",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := root.ExecuteContext(ctx)

	require.ErrorIs(t, err, types.ErrSearchCancelled)
	assert.Equal(t, 130, ExitCode(err))
	assert.NotContains(t, out.String(), "Usage:")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"unknown shard", types.NewErrUnknownShard(0x1000000000000000, []types.ShardID{0x4000000000000000}), 1},
		{"malformed address", types.ErrMalformedIdentifier, 1},
		{"cancelled", fmt.Errorf("%w: %w", types.ErrSearchCancelled, context.Canceled), 130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
