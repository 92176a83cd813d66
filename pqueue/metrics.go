package pqueue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entriesInserted = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "pqueue_entries_inserted_total",
		Help: "The total number of entries inserted",
	}, []string{"queue"})

	entriesRemoved = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "pqueue_entries_removed_total",
		Help: "The total number of entries removed",
	}, []string{"queue"})

	priorityChanges = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "pqueue_priority_changes_total",
		Help: "The total number of successful priority changes",
	}, []string{"queue"})

	copyFailures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "pqueue_copy_failures_total",
		Help: "The total number of failed element or priority copies",
	}, []string{"queue"})

	queueSize = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "pqueue_entries",
		Help: "The number of entries currently in the queue",
	}, []string{"queue"})
)

// queueMetrics is nil when metrics are disabled; every method is nil-safe.
type queueMetrics struct {
	inserted prometheus.Counter
	removed  prometheus.Counter
	changed  prometheus.Counter
	failed   prometheus.Counter
	size     prometheus.Gauge
}

func newQueueMetrics(name string) *queueMetrics {
	return &queueMetrics{
		inserted: entriesInserted.WithLabelValues(name),
		removed:  entriesRemoved.WithLabelValues(name),
		changed:  priorityChanges.WithLabelValues(name),
		failed:   copyFailures.WithLabelValues(name),
		size:     queueSize.WithLabelValues(name),
	}
}

func (m *queueMetrics) insert() {
	if m == nil {
		return
	}

	m.inserted.Inc()
	m.size.Inc()
}

func (m *queueMetrics) remove() {
	if m == nil {
		return
	}

	m.removed.Inc()
	m.size.Dec()
}

func (m *queueMetrics) priorityChanged() {
	if m != nil {
		m.changed.Inc()
	}
}

func (m *queueMetrics) copyFailed() {
	if m != nil {
		m.failed.Inc()
	}
}

func (m *queueMetrics) grow(n int) {
	if m != nil {
		m.size.Add(float64(n))
	}
}
