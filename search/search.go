package search

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/dymensionxyz/tonshard/shard"
	"github.com/dymensionxyz/tonshard/types"
	uerrors "github.com/dymensionxyz/tonshard/utils/errors"
)

// Generator produces one fresh candidate per call. Calls share no state.
type Generator interface {
	Generate(ctx context.Context) (types.Candidate, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context) (types.Candidate, error)

func (f GeneratorFunc) Generate(ctx context.Context) (types.Candidate, error) {
	return f(ctx)
}

// Miss describes a candidate that landed outside the target shard.
type Miss struct {
	Attempt   uint64
	AccountID string
	// Shard is where the candidate landed. Only set if Found.
	Shard types.ShardID
	Found bool
}

// Result is the accepted candidate.
type Result struct {
	types.Candidate
	Shard    types.ShardID
	Attempts uint64
	Elapsed  time.Duration
}

// Searcher draws candidates until one lands in the target shard.
// A Searcher must not be Run concurrently with itself.
type Searcher struct {
	topology shard.Topology
	target   types.ShardID
	gen      Generator
	logger   types.Logger

	maxAttempts      uint64
	workers          int
	progressInterval uint64
	onMiss           func(Miss)

	attempts atomic.Uint64
}

// NewSearcher creates a Searcher. The target has to be one of the topology shards.
func NewSearcher(topology shard.Topology, target types.ShardID, gen Generator, opts ...Option) (*Searcher, error) {
	if len(topology) == 0 {
		return nil, types.ErrEmptyTopology
	}
	if gen == nil {
		return nil, fmt.Errorf("nil generator: %w", gerrc.ErrInvalidArgument)
	}
	if err := shard.ValidateTarget(topology, target); err != nil {
		return nil, err
	}

	s := &Searcher{
		topology: topology,
		target:   target,
		gen:      gen,
		logger:   types.NopLogger{},
		workers:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s, nil
}

// Search is a shorthand for NewSearcher followed by Run.
func Search(ctx context.Context, topology shard.Topology, target types.ShardID, gen Generator, opts ...Option) (*Result, error) {
	s, err := NewSearcher(topology, target, gen, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx)
}

// Run searches until a candidate lands in the target shard. It returns types.ErrSearchCancelled once
// ctx is done, types.ErrSearchExhausted when the attempt limit is hit and wraps
// types.ErrCandidateGenerationFailed if the generator fails. ctx is checked between attempts.
func (s *Searcher) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	s.attempts.Store(0)
	searchTargetExpectedAttemptsGauge.Set(float64(s.target.ExpectedAttempts()))

	s.logger.Info("Searching for account.", "target", s.target, "expected attempts", s.target.ExpectedAttempts(),
		"workers", s.workers, "max attempts", s.maxAttempts)

	var (
		res *Result
		err error
	)
	if s.workers == 1 {
		res, err = s.work(ctx)
	} else {
		res, err = s.runParallel(ctx)
	}
	if err != nil {
		s.logger.Error("Search stopped.", "attempts", s.Attempts(), "err", err)
		return nil, err
	}

	res.Elapsed = time.Since(start)
	searchMatchesCounter.Inc()
	s.logger.Info("Found account in target shard.", "shard", res.Shard, "attempts", res.Attempts, "elapsed", res.Elapsed)
	return res, nil
}

// Attempts returns the number of attempts started by the current or last Run.
func (s *Searcher) Attempts() uint64 {
	return s.attempts.Load()
}

func (s *Searcher) runParallel(ctx context.Context) (*Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var found atomic.Pointer[Result]
	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < s.workers; i++ {
		uerrors.ErrGroupGoLog(eg, s.logger, func() error {
			res, err := s.work(egCtx)
			if res != nil && found.CompareAndSwap(nil, res) {
				cancel()
			}
			return err
		})
	}
	err := eg.Wait()
	if res := found.Load(); res != nil {
		return res, nil
	}
	return nil, err
}

// work runs the generate and compare loop.
func (s *Searcher) work(ctx context.Context) (*Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrSearchCancelled, err)
		}
		n := s.attempts.Add(1)
		if s.maxAttempts != 0 && n > s.maxAttempts {
			return nil, fmt.Errorf("%w: limit %d", types.ErrSearchExhausted, s.maxAttempts)
		}

		c, err := s.gen.Generate(ctx)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil, fmt.Errorf("%w: %w", types.ErrSearchCancelled, err)
			}
			return nil, fmt.Errorf("%w: attempt %d: %w", types.ErrCandidateGenerationFailed, n, err)
		}
		searchAttemptsCounter.Inc()

		got, err := shard.Lookup(s.topology, c.AccountID)
		if err == nil && got == s.target {
			return &Result{Candidate: c, Shard: got, Attempts: n}, nil
		}
		if errors.Is(err, types.ErrMalformedIdentifier) {
			s.logger.Error("Generated candidate has malformed account id.", "account", c.AccountID, "err", err)
		}
		s.miss(Miss{Attempt: n, AccountID: c.AccountID, Shard: got, Found: err == nil})

		if s.progressInterval != 0 && n%s.progressInterval == 0 {
			s.logger.Info("Search progress.", "attempts", n, "target", s.target)
		}
	}
}

func (s *Searcher) miss(m Miss) {
	label := "none"
	if m.Found {
		label = m.Shard.String()
		s.logger.Debug("Shard is not equal to target.", "got", m.Shard, "expect", s.target, "attempt", m.Attempt)
	} else {
		s.logger.Debug("Shard is not found.", "account", m.AccountID, "attempt", m.Attempt)
	}
	searchMissesCounter.WithLabelValues(label).Inc()
	if s.onMiss != nil {
		s.onMiss(m)
	}
}
