package types

import (
	"fmt"
	"strings"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
)

var (
	ErrMalformedIdentifier       = fmt.Errorf("malformed account identifier: %w", gerrc.ErrInvalidArgument)
	ErrInvalidShard              = fmt.Errorf("invalid shard id: %w", gerrc.ErrInvalidArgument)
	ErrNoShardFound              = fmt.Errorf("no shard found for account: %w", gerrc.ErrNotFound)
	ErrTopologyFetchFailed       = fmt.Errorf("fetch shard topology: %w", gerrc.ErrUnavailable)
	ErrCandidateGenerationFailed = fmt.Errorf("generate candidate: %w", gerrc.ErrInternal)
	ErrSearchExhausted           = fmt.Errorf("search attempts exhausted: %w", gerrc.ErrResourceExhausted)
	ErrSearchCancelled           = fmt.Errorf("search cancelled: %w", gerrc.ErrCancelled)
	ErrEmptyTopology             = fmt.Errorf("topology has no usable shards: %w", gerrc.ErrNotFound)
)

// ErrUnknownShard is returned when a requested shard is not one of the active shards.
type ErrUnknownShard struct {
	Requested ShardID
	Valid     []ShardID
}

// NewErrUnknownShard creates a new ErrUnknownShard error.
func NewErrUnknownShard(requested ShardID, valid []ShardID) error {
	return &ErrUnknownShard{
		Requested: requested,
		Valid:     append([]ShardID(nil), valid...),
	}
}

func (e ErrUnknownShard) Error() string {
	hexes := make([]string, len(e.Valid))
	for i, s := range e.Valid {
		hexes[i] = s.String()
	}
	return fmt.Sprintf("invalid shard %s. Choose from: %s", e.Requested, strings.Join(hexes, ", "))
}

func (e ErrUnknownShard) Unwrap() error {
	return gerrc.ErrNotFound
}
