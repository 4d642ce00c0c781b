package topology

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/xssnick/tonutils-go/liteclient"
	"github.com/xssnick/tonutils-go/ton"

	"github.com/dymensionxyz/tonshard/types"
)

// basechain is the workchain wallet accounts live in.
const basechain = 0

// LiteAPI is the part of the liteserver API the provider needs. *ton.APIClient implements it.
type LiteAPI interface {
	CurrentMasterchainInfo(ctx context.Context) (*ton.BlockIDExt, error)
	GetBlockShardsInfo(ctx context.Context, master *ton.BlockIDExt) ([]*ton.BlockIDExt, error)
}

// LiteClient reads the shard configuration of the last masterchain block from liteservers.
type LiteClient struct {
	config    Config
	logger    types.Logger
	api       LiteAPI
	pool      *liteclient.ConnectionPool
	connected bool
}

var _ Provider = &LiteClient{}

// LiteClientOption configures a LiteClient.
type LiteClientOption func(*LiteClient)

// WithLiteAPI makes the client use api instead of connecting to the liteservers of the global config.
func WithLiteAPI(api LiteAPI) LiteClientOption {
	return func(c *LiteClient) {
		c.api = api
	}
}

// NewLiteClient returns an uninitialized LiteClient.
func NewLiteClient(opts ...LiteClientOption) *LiteClient {
	c := &LiteClient{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init is called once. Connections are opened lazily by the first fetch.
func (c *LiteClient) Init(config Config, logger types.Logger) error {
	c.config = config
	c.logger = logger
	if c.api != nil {
		return nil
	}
	if config.GlobalConfigURL == "" {
		return fmt.Errorf("global_config_url cannot be empty")
	}
	c.pool = liteclient.NewConnectionPool()
	c.api = ton.NewAPIClient(c.pool)
	return nil
}

// FetchActiveShards returns the masterchain shard followed by the basechain shards of the last
// masterchain block. Network errors are retried; the final failure wraps types.ErrTopologyFetchFailed.
func (c *LiteClient) FetchActiveShards(ctx context.Context) ([]types.ShardID, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.FetchTimeout)
	defer cancel()

	var shards []types.ShardID
	err := retry.Do(
		func() error {
			var err error
			shards, err = c.fetch(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.config.RetryAttempts),
		retry.Delay(c.config.RetryMinDelay),
		retry.MaxDelay(c.config.RetryMaxDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Error("Fetching shard topology.", "attempt", n+1, "err", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrTopologyFetchFailed, err)
	}
	return shards, nil
}

func (c *LiteClient) fetch(ctx context.Context) ([]types.ShardID, error) {
	if err := c.connect(ctx); err != nil {
		return nil, err
	}

	master, err := c.api.CurrentMasterchainInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("get masterchain info: %w", err)
	}
	blocks, err := c.api.GetBlockShardsInfo(ctx, master)
	if err != nil {
		return nil, fmt.Errorf("get block shards: seqno %d: %w", master.SeqNo, err)
	}

	shards := make([]types.ShardID, 0, len(blocks)+1)
	shards = append(shards, types.ShardID(uint64(master.Shard)))
	for _, b := range blocks {
		if b.Workchain != basechain {
			c.logger.Debug("Skipping shard outside basechain.", "workchain", b.Workchain, "shard", types.ShardID(uint64(b.Shard)))
			continue
		}
		shards = append(shards, types.ShardID(uint64(b.Shard)))
	}
	c.logger.Info("Fetched shard topology.", "master seqno", master.SeqNo, "shards", len(shards))
	return shards, nil
}

func (c *LiteClient) connect(ctx context.Context) error {
	if c.pool == nil || c.connected {
		return nil
	}
	if err := c.pool.AddConnectionsFromConfigUrl(ctx, c.config.GlobalConfigURL); err != nil {
		return fmt.Errorf("connect to liteservers: %w", err)
	}
	c.connected = true
	return nil
}

// Stop closes the liteserver connections.
func (c *LiteClient) Stop() {
	if c.pool != nil {
		c.pool.Stop()
	}
}
