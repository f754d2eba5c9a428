// Package memory is a process-local implementation of the order and actor stores.
// It backs the service when STORE_DRIVER=memory and is used by tests that need real
// compare-and-set semantics without a database.
//
// Writes through a begun unit of work are applied immediately and journaled; Rollback
// undoes them in reverse order and Commit drops the journal. Other readers see the
// writes before commit, so the store gives atomicity but not isolation. The conditional
// status write is atomic under the store mutex, which is sufficient for
// single-writer-wins per order.
//
// Usage:
//
//	store := NewStore()
//	uow := store.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().UpdateStatus(ctx, o, from); err != nil {
//	    return err
//	}
//	// A failure here also reverts the status write above.
//	if err := uow.OrderRepository().AddTransition(ctx, record); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

type actorRow struct {
	id     kernel.UUID
	name   string
	role   actor.Role
	active bool
}

// Store holds orders, actors and transition history.
type Store struct {
	mu          sync.RWMutex
	orders      map[kernel.UUID]order.Snapshot
	sequence    []kernel.UUID
	actors      map[kernel.UUID]actorRow
	transitions map[kernel.UUID][]order.TransitionRecord
	fault       error
}

func NewStore() *Store {
	return &Store{
		orders:      make(map[kernel.UUID]order.Snapshot),
		actors:      make(map[kernel.UUID]actorRow),
		transitions: make(map[kernel.UUID][]order.TransitionRecord),
	}
}

// SetFault makes every subsequent operation fail with a TransportError wrapping err.
// Passing nil restores normal operation.
func (s *Store) SetFault(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = err
}

// Create implements ports.UnitOfWorkFactory.
func (s *Store) Create() ports.UnitOfWork {
	return &unitOfWork{store: s}
}

// OrderRepository writes straight to the store without a journal.
func (s *Store) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: s}
}

// ActorRepository writes straight to the store without a journal.
func (s *Store) ActorRepository() ports.ActorRepository {
	return &ActorRepository{store: s}
}

func (s *Store) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.fault != nil {
		return errs.NewTransportError(op, s.fault)
	}
	return nil
}

// journal holds the undo steps of one open unit of work. Steps run with the store
// mutex held.
type journal struct {
	mu    sync.Mutex
	steps []func()
}

func (j *journal) record(undo func()) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.steps = append(j.steps, undo)
}

func (j *journal) drain() []func() {
	j.mu.Lock()
	defer j.mu.Unlock()
	steps := j.steps
	j.steps = nil
	return steps
}

type unitOfWork struct {
	store *Store
	tx    *journal
}

// Begin opens a journal. Calling it again while one is open is a no-op.
func (u *unitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.tx == nil {
		u.tx = &journal{}
	}
	return nil
}

// Commit keeps every write made since Begin.
func (u *unitOfWork) Commit(_ context.Context) error {
	u.tx = nil
	return nil
}

// Rollback undoes the writes made since Begin. With nothing open it does nothing, so it
// is safe to defer after Commit.
func (u *unitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}
	steps := u.tx.drain()
	u.tx = nil

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(steps) - 1; i >= 0; i-- {
		steps[i]()
	}
	return nil
}

func (u *unitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: u.store, tx: u.tx}
}

func (u *unitOfWork) ActorRepository() ports.ActorRepository {
	return &ActorRepository{store: u.store, tx: u.tx}
}
