package store

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts dispatched commands. Wire it with WithHooks(m.Hooks()).
type Metrics struct {
	commands *prometheus.CounterVec
	rejected *prometheus.CounterVec
	size     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "users_commands_total",
				Help: "Total number of applied commands",
			},
			[]string{"type"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "users_commands_rejected_total",
				Help: "Total number of commands the reducer rejected",
			},
			[]string{"type"},
		),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "users_state_size",
			Help: "Number of users in the current state",
		}),
	}
	var registered []prometheus.Collector
	for _, c := range []prometheus.Collector{m.commands, m.rejected, m.size} {
		if err := reg.Register(c); err != nil {
			for _, r := range registered {
				reg.Unregister(r)
			}
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		registered = append(registered, c)
	}
	m.size.Set(float64(InitialState().Len()))
	return m, nil
}

// Hooks returns container hooks that update the collectors.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnDispatch: func(cmd Command, next State) {
			m.commands.WithLabelValues(cmd.Type()).Inc()
			m.size.Set(float64(next.Len()))
		},
		OnReject: func(cmd Command, _ error) {
			m.rejected.WithLabelValues(commandType(cmd)).Inc()
		},
	}
}
