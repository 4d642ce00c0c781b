package topology

import (
	"context"
	"errors"

	"github.com/dymensionxyz/tonshard/types"
)

// Static serves a topology fixed in the configuration. It is meant for offline use and tests.
type Static struct {
	shards []types.ShardID
}

var _ Provider = &Static{}

// NewStatic returns a provider serving shards as given.
func NewStatic(shards ...types.ShardID) *Static {
	return &Static{shards: shards}
}

// Init parses the configured shard list.
func (s *Static) Init(config Config, logger types.Logger) error {
	if len(config.StaticShards) == 0 {
		return errors.New("static_shards is empty")
	}
	s.shards = nil
	for _, h := range config.StaticShards {
		id, err := types.ParseShardID(h)
		if err != nil {
			return err
		}
		s.shards = append(s.shards, id)
	}
	logger.Debug("Loaded static topology.", "shards", len(s.shards))
	return nil
}

func (s *Static) FetchActiveShards(ctx context.Context) ([]types.ShardID, error) {
	return append([]types.ShardID(nil), s.shards...), nil
}
