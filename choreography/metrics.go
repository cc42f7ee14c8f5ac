// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choreography

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics is the choreography server's Prometheus collector set: a
// counter of launches, a counter of aborts, and a histogram of elapsed
// computation time from launch to the runtime session finishing.
type metrics struct {
	launches prometheus.Counter
	aborts   prometheus.Counter
	elapsed  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		launches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "moose",
			Subsystem: "choreography",
			Name:      "launches_total",
			Help:      "Number of computations accepted by LaunchComputation.",
		}),
		aborts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "moose",
			Subsystem: "choreography",
			Name:      "aborts_total",
			Help:      "Number of sessions forgotten via AbortComputation.",
		}),
		elapsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "moose",
			Subsystem: "choreography",
			Name:      "computation_elapsed_seconds",
			Help:      "Wall-clock time from LaunchComputation to the runtime session finishing.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.launches, m.aborts, m.elapsed)
	}
	return m
}
