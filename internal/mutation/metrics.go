package mutation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счетчики движка мутаций. Экспортируются на /metrics.
var (
	mutationsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "village_mutations_applied_total",
		Help: "Successfully applied mutations by source and kind.",
	}, []string{"source", "kind"})

	mutationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "village_mutations_failed_total",
		Help: "Rejected mutations by error code.",
	}, []string{"code"})

	cacheInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "village_cache_invalidations_total",
		Help: "Render cache invalidation fan-outs.",
	})

	historyOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "village_history_ops_total",
		Help: "Undo/redo operations.",
	}, []string{"op"})
)
