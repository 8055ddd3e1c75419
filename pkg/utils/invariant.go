// Package utils carries the invariant machinery shared by the list implementations.
// Invariants are conditions in code that must be true; otherwise, there is a bug in code.
// Think of what you'd `panic()` on (equivalent to `assert` in other languages), but you don't want
// to crash the caller's process just because of that violation. If an invariant is violated,
// a log error is recorded and a monitoring counter is incremented that can trigger an alert.
// It is still up to the caller to handle the erroneous case, e.g. by returning an unexpected-state
// error and skipping the following computations.
//
// Do not use invariants for conditions that depend on the caller's input; an out-of-range index is
// a routine error, not an invariant violation. But a nil forward link on an interior node that our
// own linking code should never have produced is exactly what invariants are for.

package utils

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promclient "github.com/prometheus/client_model/go"
)

var invariantsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invariants_total",
	Help: "The total number of invariant violations",
}, []string{
	"module", // The module in which this invariant occurred.
	"type",   // The type of the invariant that occurred.
})

// RaiseInvariant records a violated invariant: the counter is incremented and the violation is
// logged through the default slog logger. Under test builds it panics so defects cannot hide.
func RaiseInvariant(module, invariantType, msg string, args ...any) {
	invariantsMetric.WithLabelValues(module, invariantType).Inc()
	slog.With("invariant", invariantType, "module", module).Error(msg, args...)
	if IsTestMode {
		panic("invariant violated: " + invariantType)
	}
}

// GetMetricValue returns the current value of the invariant metric for `module` and `invariantType`.
func GetMetricValue(module, invariantType string) int {
	var metric = &promclient.Metric{}
	if err := invariantsMetric.WithLabelValues(module, invariantType).Write(metric); err != nil {
		slog.Error(err.Error())
		return 0
	}
	return int(metric.Counter.GetValue())
}
