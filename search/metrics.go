package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var searchAttemptsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tonshard_search_attempts_total",
	Help: "The number of candidate accounts generated.",
})
var searchMissesCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tonshard_search_misses_total",
	Help: "The number of candidates that landed outside the target shard, by the shard they landed in.",
}, []string{"shard"})
var searchMatchesCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tonshard_search_matches_total",
	Help: "The number of searches that found an account in the target shard.",
})
var searchTargetExpectedAttemptsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "tonshard_search_target_expected_attempts",
	Help: "The mean number of attempts needed to hit the current target shard.",
})
