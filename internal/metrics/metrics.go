// Package metrics exposes Prometheus counters for the calculator API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Calculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalyst_calculations_total",
		Help: "Loading calculations by outcome (ok, invalid).",
	}, []string{"outcome"})

	HistoryMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalyst_history_mutations_total",
		Help: "History log mutations by operation.",
	}, []string{"op"})

	CompoundMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalyst_compound_mutations_total",
		Help: "Compound database mutations by operation.",
	}, []string{"op"})

	PersistenceErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalyst_persistence_errors_total",
		Help: "Failed saves by store.",
	}, []string{"store"})
)

func Handler() http.Handler { return promhttp.Handler() }
