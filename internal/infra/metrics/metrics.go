package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlacementsTotal counts assign outcomes: placed, moved, unchanged.
	PlacementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carist_placements_total",
		Help: "Package placement operations by outcome.",
	}, []string{"outcome"})

	RemovalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carist_placement_removals_total",
		Help: "Placement ledger rows removed.",
	})

	IntegrityWarningsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carist_integrity_warnings_total",
		Help: "Slots observed holding more than one current package.",
	})
)
