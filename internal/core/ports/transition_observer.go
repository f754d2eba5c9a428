package ports

import (
	"laundry/internal/core/domain/model/order"
)

// TransitionObserver is told about every transition attempt outcome after the
// transaction has settled. Implementations must not block.
type TransitionObserver interface {
	TransitionApplied(record order.TransitionRecord)
	TransitionRejected(from, to order.Status, reason string)
}
