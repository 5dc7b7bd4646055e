package metrics

import (
	"testing"

	"restaurant/config"
	domainerrors "restaurant/internal/domain/errors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOrderOperation(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Namespace: "kitchen"}})

	m.RecordOrderOperation("create_order", nil)
	m.RecordOrderOperation("create_order", nil)
	m.RecordOrderOperation("create_order", domainerrors.ErrConstraintViolation.WithDetails("customers.id"))
	m.RecordStockShortage("Flour")

	assert.InDelta(t, 2, testutil.ToFloat64(m.orderOperations.WithLabelValues("create_order", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.orderOperations.WithLabelValues("create_order", "constraint_violation")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.stockShortages.WithLabelValues("Flour")), 0)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.ElementsMatch(t, []string{"kitchen_order_operations_total", "kitchen_stock_shortages_total"}, names)
}

func TestOperationStatus(t *testing.T) {
	assert.Equal(t, "success", OperationStatus(nil))
	assert.Equal(t, "insufficient_stock", OperationStatus(&domainerrors.InsufficientStockError{Name: "Flour"}))
	assert.Equal(t, "invalid_transition", OperationStatus(&domainerrors.InvalidTransitionError{From: "Pending", To: "Ready"}))
}
