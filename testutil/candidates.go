package testutil

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"

	"github.com/dymensionxyz/tonshard/types"
)

// AccountIn returns a raw account address whose top bits fall into shard.
func AccountIn(r *rand.Rand, shard types.ShardID) string {
	var id types.AccountID
	_, _ = r.Read(id[:])
	p := shard.Prefix()
	low := binary.BigEndian.Uint64(id[:8]) >> p.Len
	binary.BigEndian.PutUint64(id[:8], p.Bits|low)
	return id.Raw(0)
}

// CandidateIn returns a candidate whose account falls into shard.
func CandidateIn(r *rand.Rand, shard types.ShardID) types.Candidate {
	accountID := AccountIn(r, shard)
	return types.Candidate{
		Mnemonic:  []string{"test", fmt.Sprintf("%d", r.Int63())},
		AccountID: accountID,
		Address:   accountID,
	}
}

// SequenceGenerator hands out a fixed list of candidates, cycling when exhausted.
type SequenceGenerator struct {
	mtx        sync.Mutex
	Candidates []types.Candidate
	calls      int
}

// NewSequenceGenerator returns a generator yielding one candidate per shard, in order.
func NewSequenceGenerator(seed int64, shards ...types.ShardID) *SequenceGenerator {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // test data
	g := &SequenceGenerator{}
	for _, s := range shards {
		g.Candidates = append(g.Candidates, CandidateIn(r, s))
	}
	return g
}

func (g *SequenceGenerator) Generate(ctx context.Context) (types.Candidate, error) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	c := g.Candidates[g.calls%len(g.Candidates)]
	g.calls++
	return c, nil
}

// Calls returns the number of candidates handed out.
func (g *SequenceGenerator) Calls() int {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return g.calls
}
