package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Searches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solarscope",
		Name:      "searches_total",
		Help:      "Completed searches by screen.",
	}, []string{"screen"})

	Actions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solarscope",
		Name:      "actions_total",
		Help:      "Listing and enrichment actions by name and outcome.",
	}, []string{"action", "outcome"})

	PersistenceErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solarscope",
		Name:      "persistence_errors_total",
		Help:      "Failed reads and writes of persisted filter selections.",
	}, []string{"op"})

	Superseded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "solarscope",
		Name:      "superseded_total",
		Help:      "Pending operations cancelled by a newer request.",
	})

	SessionsEvicted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solarscope",
		Name:      "sessions_evicted_total",
		Help:      "Session states dropped for idleness or to stay within the session limit.",
	}, []string{"registry"})
)
