// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the role dashboards.
package queries

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store. Both the postgres and the in-memory
// repositories satisfy it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	List(ctx context.Context, filter order.Filter) ([]*order.Order, error)
	ListTransitions(ctx context.Context, orderID kernel.UUID) ([]order.TransitionRecord, error)
}

// ActorReader is the read side of the actor store.
type ActorReader interface {
	ListByRole(ctx context.Context, role actor.Role, activeOnly bool) ([]*actor.Actor, error)
}
