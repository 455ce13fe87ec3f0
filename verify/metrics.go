package verify

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts replayed games and plies.
type Metrics struct {
	Games *prometheus.CounterVec
	Plies prometheus.Counter
}

// Outcome labels for the games counter.
const (
	LabelMatch      = "match"
	LabelMismatch   = "mismatch"
	LabelIllegal    = "illegal"
	LabelEndedEarly = "ended_early"
)

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "takrules",
			Name:      "games_verified_total",
			Help:      "Games replayed against the rules engine, by outcome.",
		}, []string{"outcome"}),
		Plies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "takrules",
			Name:      "plies_replayed_total",
			Help:      "Plies executed while replaying games.",
		}),
	}

	reg.MustRegister(m.Games, m.Plies)
	return m
}
