package memory

import (
	"context"
	"fmt"
	"slices"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// OrderRepository reads and writes orders. Writes made through a begun unit of work are
// journaled so that Rollback can revert them.
type OrderRepository struct {
	store *Store
	tx    *journal
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "add order"); err != nil {
		return err
	}

	if _, ok := s.orders[aggregate.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", aggregate.ID()))
	}
	id := aggregate.ID()
	s.orders[id] = aggregate.Snapshot()
	s.sequence = append(s.sequence, id)
	r.tx.record(func() {
		delete(s.orders, id)
		s.sequence = slices.DeleteFunc(s.sequence, func(v kernel.UUID) bool { return v.IsEqual(id) })
	})
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "get order"); err != nil {
		return nil, err
	}

	snap, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snap)
}

func (r *OrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "list orders"); err != nil {
		return nil, err
	}

	out := make([]*order.Order, 0)
	for _, id := range s.sequence {
		o, err := order.RestoreOrder(s.orders[id])
		if err != nil {
			return nil, err
		}
		if filter.Matches(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "update order status"); err != nil {
		return err
	}

	stored, ok := s.orders[aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if stored.Status != expected {
		return errs.NewStaleStateError(aggregate.ID().String(), expected.String(), stored.Status.String())
	}

	next := aggregate.Snapshot()
	next.Notes = stored.Notes
	next.Customer = stored.Customer
	s.orders[aggregate.ID()] = next
	r.restoreOnRollback(stored)
	return nil
}

func (r *OrderRepository) UpdateFields(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "update order fields"); err != nil {
		return err
	}

	stored, ok := s.orders[aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	r.restoreOnRollback(stored)
	stored.Notes = aggregate.Notes()
	stored.Customer = aggregate.Customer()
	stored.UpdatedAt = aggregate.UpdatedAt()
	s.orders[aggregate.ID()] = stored
	return nil
}

func (r *OrderRepository) AddTransition(ctx context.Context, record order.TransitionRecord) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "add transition"); err != nil {
		return err
	}

	n := len(s.transitions[record.OrderID])
	s.transitions[record.OrderID] = append(s.transitions[record.OrderID], record)
	r.tx.record(func() {
		s.transitions[record.OrderID] = s.transitions[record.OrderID][:n]
	})
	return nil
}

func (r *OrderRepository) ListTransitions(ctx context.Context, orderID kernel.UUID) ([]order.TransitionRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "list transitions"); err != nil {
		return nil, err
	}

	out := make([]order.TransitionRecord, len(s.transitions[orderID]))
	copy(out, s.transitions[orderID])
	return out, nil
}

func (r *OrderRepository) restoreOnRollback(previous order.Snapshot) {
	s := r.store
	r.tx.record(func() {
		s.orders[previous.ID] = previous
	})
}
