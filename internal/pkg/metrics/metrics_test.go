package metrics_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	obs := metrics.NewTransitionObserver(m)

	obs.TransitionApplied(order.TransitionRecord{Kind: order.GuardedTransition, To: order.Sorting})
	obs.TransitionApplied(order.TransitionRecord{Kind: order.GuardedTransition, To: order.Sorting})
	obs.TransitionApplied(order.TransitionRecord{Kind: order.OverrideTransition, To: order.Refund})
	obs.TransitionRejected(order.Packing, order.ReadyForPickup, "invalid-rack-format")

	assert.InDelta(t, 2, testutil.ToFloat64(m.Transitions.WithLabelValues("guarded", "Sorting")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Transitions.WithLabelValues("override", "Refund")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Rejections.WithLabelValues("invalid-rack-format")), 0)
}

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	require.Panics(t, func() { metrics.New(reg) })
}
