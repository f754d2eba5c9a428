// Package ports defines the persistence and notification contracts of the workflow core.
// Adapters under internal/adapters implement them; the core never imports an adapter.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository is the order store consumed by the workflow engine.
//
// Implementations wrap connectivity failures in errs.TransportError and report missing
// orders as errs.ObjectNotFoundError.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get fetches an order by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns the orders matching filter, oldest first.
	List(ctx context.Context, filter order.Filter) ([]*order.Order, error)

	// UpdateStatus writes the workflow state of aggregate (status, audit stamps and edge
	// side effects) only if the stored status still equals expected. A lost race returns
	// errs.StaleStateError and writes nothing.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// UpdateFields writes the non-workflow fields (notes, customer snapshot).
	UpdateFields(ctx context.Context, aggregate *order.Order) error

	// AddTransition appends to the transition history.
	AddTransition(ctx context.Context, record order.TransitionRecord) error

	// ListTransitions returns the history of an order, oldest first.
	ListTransitions(ctx context.Context, orderID kernel.UUID) ([]order.TransitionRecord, error)
}
