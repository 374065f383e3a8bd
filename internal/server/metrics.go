package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// calculationsTotal counts calculations by endpoint and result.
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hwrel_calculations_total",
		Help: "Total hazard rate calculations by endpoint and result",
	}, []string{"endpoint", "result"})

	// calculationDuration tracks calculation latency.
	calculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hwrel_calculation_duration_seconds",
		Help:    "Calculation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"endpoint"})

	// overstressedParts tracks overstressed parts found per BoM calculation.
	overstressedParts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hwrel_overstressed_parts",
		Help:    "Number of overstressed parts per BoM calculation",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	// calculationMessages counts WARNING and ERROR lines raised.
	calculationMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hwrel_calculation_messages_total",
		Help: "Calculation messages by severity",
	}, []string{"severity"})
)
