package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счетчики хранилища слепков. Экспортируются на /metrics.
var (
	snapshotsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "village_snapshots_created_total",
		Help: "Snapshots captured.",
	})

	snapshotsRestored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "village_snapshots_restored_total",
		Help: "Snapshot restore operations.",
	})
)
