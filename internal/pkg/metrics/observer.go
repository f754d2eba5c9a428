package metrics

import (
	"laundry/internal/core/domain/model/order"
)

// TransitionObserver counts transition outcomes. It satisfies ports.TransitionObserver.
type TransitionObserver struct {
	m *Metrics
}

func NewTransitionObserver(m *Metrics) TransitionObserver {
	return TransitionObserver{m: m}
}

func (o TransitionObserver) TransitionApplied(rec order.TransitionRecord) {
	o.m.Transitions.WithLabelValues(rec.Kind.String(), rec.To.String()).Inc()
}

func (o TransitionObserver) TransitionRejected(_, _ order.Status, reason string) {
	o.m.Rejections.WithLabelValues(reason).Inc()
}
