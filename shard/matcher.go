package shard

import (
	"github.com/dymensionxyz/tonshard/types"
)

// DecodeTop64 decodes a raw account address and returns the 64 bits shards are split on.
func DecodeTop64(accountID string) (uint64, error) {
	id, err := types.ParseAccountID(accountID)
	if err != nil {
		return 0, err
	}
	return id.Top64(), nil
}

// Contains reports whether the account prefix top64 falls into shard.
func Contains(shard types.ShardID, top64 uint64) bool {
	return shard.Contains(top64)
}

// FindShard returns the first shard of the topology containing the account. A malformed account id
// is reported the same way as an account no shard contains; use Lookup to tell the two apart.
func FindShard(t Topology, accountID string) (types.ShardID, bool) {
	s, err := Lookup(t, accountID)
	return s, err == nil
}

// Lookup returns the shard of the topology containing the account. It fails with
// types.ErrMalformedIdentifier if the id does not decode and types.ErrNoShardFound if no shard holds it.
func Lookup(t Topology, accountID string) (types.ShardID, error) {
	top64, err := DecodeTop64(accountID)
	if err != nil {
		return 0, err
	}
	return t.ShardOf(top64)
}

// ShardOf returns the first shard containing the account prefix. The whole-space sentinel is skipped
// even if a topology was built without NewTopology.
func (t Topology) ShardOf(top64 uint64) (types.ShardID, error) {
	for _, s := range t {
		if s == types.ShardFull {
			continue
		}
		if s.Contains(top64) {
			return s, nil
		}
	}
	return 0, types.ErrNoShardFound
}

// ValidateTarget checks that the requested shard is one of the active shards. The error lists the
// valid choices.
func ValidateTarget(t Topology, requested types.ShardID) error {
	if requested != types.ShardFull && t.Has(requested) {
		return nil
	}
	return types.NewErrUnknownShard(requested, NewTopology(t))
}
