package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "linknode"

// MetricsObserver counts events in Prometheus.
//
// Exposed series:
//   - linknode_node_events_total{event, level}
//   - linknode_node_rejections_total{op}
//
// Rejections are counted from events whose Data carries an "op" key and whose
// level is warning or higher.
type MetricsObserver struct {
	EventsTotal     *prometheus.CounterVec
	RejectionsTotal *prometheus.CounterVec
}

// NewMetricsObserver registers the counters on reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &MetricsObserver{
		EventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "node",
			Name:      "events_total",
			Help:      "Node lifecycle events by type and level",
		}, []string{"event", "level"}),
		RejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "node",
			Name:      "rejections_total",
			Help:      "Rejected node operations by operation name",
		}, []string{"op"}),
	}

	for _, c := range []prometheus.Collector{m.EventsTotal, m.RejectionsTotal} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register node metrics: %w", err)
		}
	}
	return m, nil
}

func (m *MetricsObserver) OnEvent(_ context.Context, event Event) {
	m.EventsTotal.WithLabelValues(string(event.Type), event.Level.String()).Inc()

	if event.Level < LevelWarning {
		return
	}
	if op, ok := event.Data["op"].(string); ok {
		m.RejectionsTotal.WithLabelValues(op).Inc()
	}
}
