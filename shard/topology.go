package shard

import (
	"fmt"
	"math/bits"
	"strings"

	"go.uber.org/multierr"

	"github.com/dymensionxyz/tonshard/types"
)

// Topology is the ordered set of shards active in the network at the moment it was fetched.
type Topology []types.ShardID

// NewTopology builds a topology from the shard ids reported by the network, dropping the whole-space
// sentinel and zero ids. Order is preserved.
func NewTopology(raw []types.ShardID) Topology {
	t := make(Topology, 0, len(raw))
	for _, s := range raw {
		if s == types.ShardFull || !s.Valid() {
			continue
		}
		t = append(t, s)
	}
	return t
}

// Has reports whether s is literally one of the shards.
func (t Topology) Has(s types.ShardID) bool {
	for _, x := range t {
		if x == s {
			return true
		}
	}
	return false
}

// Strings returns the shards as hex strings, in topology order.
func (t Topology) Strings() []string {
	ret := make([]string, len(t))
	for i, s := range t {
		ret[i] = s.String()
	}
	return ret
}

func (t Topology) String() string {
	return strings.Join(t.Strings(), ", ")
}

// Validate checks that the topology is a partition of the address space: no zero ids, no two
// shards overlapping and nothing left uncovered. The whole-space sentinel is skipped, as no account is
// ever assigned to it. All problems found are returned together.
func (t Topology) Validate() error {
	assignable := make(Topology, 0, len(t))
	for _, s := range t {
		if s != types.ShardFull {
			assignable = append(assignable, s)
		}
	}
	t = assignable
	if len(t) == 0 {
		return types.ErrEmptyTopology
	}

	var err error
	for i, s := range t {
		if !s.Valid() {
			err = multierr.Append(err, fmt.Errorf("position %d: %w", i, types.ErrInvalidShard))
			continue
		}
		for _, o := range t[i+1:] {
			if s.Overlaps(o) {
				err = multierr.Append(err, fmt.Errorf("shards %s and %s overlap", s, o))
			}
		}
	}
	if err != nil {
		return err
	}

	// a shard with marker bit x covers 2^(x+1) ids, so the halved sizes of a partition sum to 2^63
	var covered uint64
	for _, s := range t {
		covered += uint64(1) << bits.TrailingZeros64(uint64(s))
	}
	if covered != uint64(types.ShardFull) {
		return fmt.Errorf("shards cover %d/%d of the address space", covered, uint64(types.ShardFull))
	}
	return nil
}
