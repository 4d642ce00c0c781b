package shard_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dymensionxyz/tonshard/shard"
	"github.com/dymensionxyz/tonshard/types"
)

var quarters = shard.Topology{
	0x2000000000000000,
	0x6000000000000000,
	0xA000000000000000,
	0xE000000000000000,
}

func TestFindShard(t *testing.T) {
	addresses := []struct {
		accountID string
		want      types.ShardID
	}{
		{"0:af78316b56ee5f7e88f3558ad3b5ebbafd49304249e48dd33c9f27e63b7c8fe7", 0xA000000000000000},
		{"0:80fa1ebdd70277ca902d52cb2007cf910ca572b80f7c186fbb86e116cf4c66ba", 0xA000000000000000},
		{"0:923150e0c668cb309dc3d43449be197e17f5095378260e7715e278eaa80941ab", 0xA000000000000000},
		{"0:684c17d1138bcd4355aa88cc30dacba8cda4d8f3de4392cb5a7f4bec030190af", 0x6000000000000000},
		{"0:51cca3ff74207b3ed8f075740b126c320e795ec4f19f70b80d9cf919fc292594", 0x6000000000000000},
		{"0:b19a8a1821d01279aeb98e84a2ed002e4a30633264702b1059cebe73100d6b95", 0xA000000000000000},
		{"1f78316b56ee5f7e88f3558ad3b5ebbafd49304249e48dd33c9f27e63b7c8fe7", 0x2000000000000000},
		{"0:F78316B56EE5F7E88F3558AD3B5EBBAFD49304249E48DD33C9F27E63B7C8FE70", 0xE000000000000000},
	}
	for _, a := range addresses {
		got, ok := shard.FindShard(quarters, a.accountID)
		require.True(t, ok, a.accountID)
		assert.Equal(t, a.want, got, "address: %s, got: %s, expect: %s", a.accountID, got, a.want)
	}
}

func TestFindShardMalformed(t *testing.T) {
	valid := "af78316b56ee5f7e88f3558ad3b5ebbafd49304249e48dd33c9f27e63b7c8fe7"
	for _, in := range []string{
		"0:" + valid[:62],   // 31 bytes
		"0:" + valid + "00", // 33 bytes
		"0:" + valid[:63],
		"not an address",
		"",
	} {
		got, ok := shard.FindShard(quarters, in)
		assert.False(t, ok, in)
		assert.Zero(t, got)

		_, err := shard.Lookup(quarters, in)
		assert.ErrorIs(t, err, types.ErrMalformedIdentifier)
		assert.ErrorIs(t, err, gerrc.ErrInvalidArgument)
	}
}

func TestLookupNoShard(t *testing.T) {
	// only the upper half of the space is active
	top := shard.Topology{0xA000000000000000, 0xE000000000000000}

	_, err := shard.Lookup(top, "0:684c17d1138bcd4355aa88cc30dacba8cda4d8f3de4392cb5a7f4bec030190af")
	assert.ErrorIs(t, err, types.ErrNoShardFound)
	assert.ErrorIs(t, err, gerrc.ErrNotFound)
	assert.False(t, errors.Is(err, types.ErrMalformedIdentifier))

	_, ok := shard.FindShard(top, "0:684c17d1138bcd4355aa88cc30dacba8cda4d8f3de4392cb5a7f4bec030190af")
	assert.False(t, ok)
}

func TestDecodeTop64(t *testing.T) {
	top, err := shard.DecodeTop64("0:684c17d1138bcd4355aa88cc30dacba8cda4d8f3de4392cb5a7f4bec030190af")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x684C17D1138BCD43), top)
	assert.True(t, shard.Contains(0x6000000000000000, top))
	assert.False(t, shard.Contains(0xA000000000000000, top))
}

func TestValidateTarget(t *testing.T) {
	require.NoError(t, shard.ValidateTarget(quarters, 0xA000000000000000))

	err := shard.ValidateTarget(quarters, 0x0000000000000001)
	require.Error(t, err)

	var unknown *types.ErrUnknownShard
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, types.ShardID(1), unknown.Requested)
	assert.Equal(t, []types.ShardID(quarters), unknown.Valid)
	assert.ErrorIs(t, err, gerrc.ErrNotFound)
	for _, h := range []string{"2000000000000000", "6000000000000000", "a000000000000000", "e000000000000000"} {
		assert.Contains(t, err.Error(), h)
	}
}

func TestValidateTargetIsExactMatch(t *testing.T) {
	// 0xB000... lies inside 0xA000... but is not an active shard
	err := shard.ValidateTarget(quarters, 0xB000000000000000)
	assert.Error(t, err)
}

func TestSentinelIsIgnored(t *testing.T) {
	raw := []types.ShardID{types.ShardFull, 0x4000000000000000, 0, 0xC000000000000000}
	top := shard.NewTopology(raw)
	assert.Equal(t, shard.Topology{0x4000000000000000, 0xC000000000000000}, top)
	assert.Equal(t, "4000000000000000, c000000000000000", top.String())

	// a topology that was not filtered still never assigns accounts to the sentinel
	unfiltered := shard.Topology(raw)
	got, ok := shard.FindShard(unfiltered, "0:f78316b56ee5f7e88f3558ad3b5ebbafd49304249e48dd33c9f27e63b7c8fe70")
	require.True(t, ok)
	assert.Equal(t, types.ShardID(0xC000000000000000), got)

	err := shard.ValidateTarget(unfiltered, types.ShardFull)
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "Choose from: 8000000000000000"))
}

func TestTopologyValidate(t *testing.T) {
	tests := []struct {
		name    string
		top     shard.Topology
		wantErr bool
	}{
		{"quarters", quarters, false},
		{"only sentinel", shard.Topology{types.ShardFull}, true},
		{"sentinel with halves", shard.Topology{types.ShardFull, 0x4000000000000000, 0xC000000000000000}, false},
		{"uneven", shard.Topology{0x4000000000000000, 0xA000000000000000, 0xE000000000000000}, false},
		{"empty", shard.Topology{}, true},
		{"gap", shard.Topology{0x2000000000000000, 0x6000000000000000, 0xA000000000000000}, true},
		{"overlap", shard.Topology{0x4000000000000000, 0x6000000000000000, 0xC000000000000000}, true},
		{"duplicate", shard.Topology{0x4000000000000000, 0x4000000000000000}, true},
		{"zero", shard.Topology{0, types.ShardFull}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.top.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// drawPartition splits the whole space at random until the requested number of leaves exists.
func drawPartition(r *rapid.T) shard.Topology {
	leaves := []types.ShardID{types.ShardFull}
	n := rapid.IntRange(2, 64).Draw(r, "leaves")
	for len(leaves) < n {
		i := rapid.IntRange(0, len(leaves)-1).Draw(r, "split")
		s := leaves[i]
		half := (s & -s) >> 1
		if half == 0 {
			break
		}
		leaves[i] = s - half
		leaves = append(leaves, s+half)
	}
	return leaves
}

func TestPartitionCoverage(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		top := drawPartition(r)
		require.NoError(r, top.Validate())

		top64 := rapid.Uint64().Draw(r, "account")
		matches := 0
		for _, s := range top {
			if s.Contains(top64) {
				matches++
			}
		}
		require.Equal(r, 1, matches, "account %x in %s", top64, top)

		got, err := top.ShardOf(top64)
		require.NoError(r, err)
		require.True(r, got.Contains(top64))
	})
}

func TestSentinelOnlyTopologyMatchesNothing(t *testing.T) {
	top := shard.Topology{types.ShardFull}

	assert.ErrorIs(t, top.Validate(), types.ErrEmptyTopology)
	_, err := top.ShardOf(0)
	assert.ErrorIs(t, err, types.ErrNoShardFound)
	assert.Error(t, shard.ValidateTarget(top, types.ShardFull))
}

func TestOverlapFlagged(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		top := drawPartition(r)
		extra := top[rapid.IntRange(0, len(top)-1).Draw(r, "dup")]
		require.Error(r, append(top, extra).Validate())
	})
}
