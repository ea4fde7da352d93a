// Package metrics declares the prometheus collectors for the HTTP API.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Generations counts generation requests by artifact (fsm, testbench)
	// and outcome (ok, invalid).
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moorgen_generations_total",
			Help: "Total number of VHDL generation requests",
		},
		[]string{"artifact", "outcome"},
	)

	// GenerationDuration observes how long a generation call takes.
	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "moorgen_generation_duration_seconds",
			Help: "Duration of VHDL generation calls",
		},
	)

	// ValidationFailures counts validate requests that found an invalid model.
	ValidationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "moorgen_validation_failures_total",
			Help: "Total number of validation requests that failed",
		},
	)
)

var registerOnce sync.Once

// MustRegister registers the collectors with the default registry. Safe
// to call from every server constructor; registration happens once.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Generations, GenerationDuration, ValidationFailures)
	})
}
