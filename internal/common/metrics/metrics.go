package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const MetricsPrefix = "qfactor_"

var jobsSubmittedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: MetricsPrefix + "backend_jobs_submitted_total",
		Help: "Number of circuit execution jobs submitted to the quantum backend",
	},
)

var jobsFailedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: MetricsPrefix + "backend_jobs_failed_total",
		Help: "Number of backend jobs that terminated in a failed state or timed out",
	},
)

var basesTriedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: MetricsPrefix + "sweep_bases_tried_total",
		Help: "Number of candidate witness bases attempted across all sweeps",
	},
)

var factorizationsCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: MetricsPrefix + "factorizations_total",
		Help: "Number of completed factorization attempts by outcome",
	},
	[]string{"outcome"},
)

type Metrics struct{}

var m = &Metrics{}

func Get() *Metrics {
	return m
}

func (m *Metrics) RecordJobSubmitted() {
	jobsSubmittedCounter.Inc()
}

func (m *Metrics) RecordJobFailed() {
	jobsFailedCounter.Inc()
}

func (m *Metrics) RecordBaseTried() {
	basesTriedCounter.Inc()
}

func (m *Metrics) RecordFactorization(outcome string) {
	factorizationsCounter.WithLabelValues(outcome).Inc()
}
