// Package metrics exports order fulfillment counters to Prometheus.
package metrics

import (
	"context"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

var _ ports.PhaseObserver = (*PhaseMetrics)(nil)

// PhaseMetrics counts committed phase transitions. Preparing orders sent back
// to Pending are also counted as kitchen rollbacks.
type PhaseMetrics struct {
	transitions *prometheus.CounterVec
	rollbacks   prometheus.Counter
	ready       prometheus.Counter
}

// NewPhaseMetrics registers the collectors with reg.
func NewPhaseMetrics(reg prometheus.Registerer) (*PhaseMetrics, error) {
	m := &PhaseMetrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pizzashop",
				Name:      "order_phase_transitions_total",
				Help:      "Total number of committed order phase transitions",
			},
			[]string{"from", "to"},
		),
		rollbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzashop",
			Name:      "order_preparation_rollbacks_total",
			Help:      "Total number of orders sent back from Preparing to Pending",
		}),
		ready: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzashop",
			Name:      "orders_ready_total",
			Help:      "Total number of orders that reached Ready",
		}),
	}

	for _, c := range []prometheus.Collector{m.transitions, m.rollbacks, m.ready} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PhaseMetrics) PhaseChanged(_ context.Context, _ kernel.UUID, from, to order.Phase) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()

	switch {
	case from == order.Preparing && to == order.Pending:
		m.rollbacks.Inc()
	case from != order.Ready && to == order.Ready:
		m.ready.Inc()
	}
}
