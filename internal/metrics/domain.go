package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BlocksPublished counts successful publish transitions.
	BlocksPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "patchboard",
			Name:      "blocks_published_total",
			Help:      "Total number of blocks published.",
		},
	)

	// RendersTotal counts render requests by outcome.
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patchboard",
			Name:      "renders_total",
			Help:      "Total number of block render requests.",
		},
		[]string{"status"},
	)
)
