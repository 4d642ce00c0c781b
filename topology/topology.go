package topology

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dymensionxyz/tonshard/shard"
	"github.com/dymensionxyz/tonshard/types"
)

var topologyShardsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "tonshard_topology_shards",
	Help: "The number of active shards in the last fetched topology.",
})

// Provider reports the shards currently active in the network.
type Provider interface {
	// Init is called once before the first fetch.
	Init(config Config, logger types.Logger) error
	// FetchActiveShards returns the shard ids in the order the network reports them. The whole-space
	// sentinel may be included.
	FetchActiveShards(ctx context.Context) ([]types.ShardID, error)
}

// Fetch obtains a fresh topology from the provider. It never caches.
func Fetch(ctx context.Context, p Provider) (shard.Topology, error) {
	raw, err := p.FetchActiveShards(ctx)
	if err != nil {
		return nil, err
	}
	t := shard.NewTopology(raw)
	if len(t) == 0 {
		return nil, types.ErrEmptyTopology
	}
	topologyShardsGauge.Set(float64(len(t)))
	return t, nil
}
