// Package metrics exposes prometheus counters for the order workflow.
package metrics

import (
	"strings"

	"restaurant/config"
	domainerrors "restaurant/internal/domain/errors"

	"github.com/prometheus/client_golang/prometheus"
)

const statusSuccess = "success"

// Metrics holds the workflow counters on a private registry, so several
// instances can coexist in one process.
type Metrics struct {
	registry        *prometheus.Registry
	orderOperations *prometheus.CounterVec
	stockShortages  *prometheus.CounterVec
}

// New registers the counters under cfg.Metrics.Namespace.
func New(cfg *config.Config) *Metrics {
	namespace := "restaurant"
	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		orderOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_operations_total",
				Help:      "Total number of order workflow operations",
			},
			[]string{"operation", "status"},
		),
		stockShortages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stock_shortages_total",
				Help:      "Total number of stock deductions refused for lack of an ingredient",
			},
			[]string{"ingredient"},
		),
	}

	m.registry.MustRegister(m.orderOperations, m.stockShortages)

	return m
}

// Registry returns the registry holding the counters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordOrderOperation counts one workflow call; a failure is labeled with its error kind.
func (m *Metrics) RecordOrderOperation(operation string, err error) {
	m.orderOperations.WithLabelValues(operation, OperationStatus(err)).Inc()
}

// RecordStockShortage counts a deduction refused because of ingredient.
func (m *Metrics) RecordStockShortage(ingredient string) {
	m.stockShortages.WithLabelValues(ingredient).Inc()
}

// OperationStatus is the status label recorded for err.
func OperationStatus(err error) string {
	if err == nil {
		return statusSuccess
	}

	return strings.ToLower(string(domainerrors.KindOf(err)))
}
