package topology_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	topologymocks "github.com/dymensionxyz/tonshard/mocks/github.com/dymensionxyz/tonshard/topology"
	"github.com/dymensionxyz/tonshard/shard"
	"github.com/dymensionxyz/tonshard/topology"
	"github.com/dymensionxyz/tonshard/types"
)

func TestFetch(t *testing.T) {
	testCases := []struct {
		name    string
		raw     []types.ShardID
		err     error
		want    shard.Topology
		wantErr error
	}{
		{
			name: "sentinel dropped",
			raw:  []types.ShardID{types.ShardFull, 0x4000000000000000, 0xC000000000000000},
			want: shard.Topology{0x4000000000000000, 0xC000000000000000},
		},
		{
			name: "order preserved",
			raw:  []types.ShardID{0xC000000000000000, 0x4000000000000000},
			want: shard.Topology{0xC000000000000000, 0x4000000000000000},
		},
		{
			name:    "only sentinel",
			raw:     []types.ShardID{types.ShardFull},
			wantErr: types.ErrEmptyTopology,
		},
		{
			name:    "provider failure",
			err:     types.ErrTopologyFetchFailed,
			wantErr: types.ErrTopologyFetchFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := topologymocks.NewMockProvider(t)
			p.EXPECT().FetchActiveShards(mock.Anything).Return(tc.raw, tc.err).Once()

			got, err := topology.Fetch(context.Background(), p)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
