package watcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus collectors a Watcher updates.
type Metrics struct {
	Polls          prometheus.Counter
	Events         *prometheus.CounterVec
	DecodeFailures prometheus.Counter
	RPCRetries     *prometheus.CounterVec
	LastBlock      prometheus.Gauge
}

// NewMetrics creates the watcher collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Polls: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "watcher",
			Name:      "polls_total",
			Help:      "Number of polling rounds that processed every confirmed block",
		}),
		Events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "watcher",
			Name:      "events_total",
			Help:      "Number of decoded governor events delivered to the handler",
		}, []string{"event"}),
		DecodeFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "watcher",
			Name:      "decode_failures_total",
			Help:      "Number of logs that could not be decoded",
		}),
		RPCRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "governor",
			Subsystem: "watcher",
			Name:      "rpc_retries_total",
			Help:      "Number of retried RPC requests",
		}, []string{"method"}),
		LastBlock: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "governor",
			Subsystem: "watcher",
			Name:      "last_processed_block",
			Help:      "Highest block whose logs have been delivered",
		}),
	}
}
