package commands_test

import (
	"context"
	"time"

	"laundry/internal/adapters/out/memory"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var testClock = kernel.FixedClock{At: time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, f order.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) UpdateFields(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) AddTransition(ctx context.Context, rec order.TransitionRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockOrderRepository) ListTransitions(ctx context.Context, id kernel.UUID) ([]order.TransitionRecord, error) {
	args := m.Called(ctx, id)
	recs, _ := args.Get(0).([]order.TransitionRecord)
	return recs, args.Error(1)
}

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Add(ctx context.Context, a *actor.Actor) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*actor.Actor)
	return a, args.Error(1)
}

func (m *MockActorRepository) ListByRole(ctx context.Context, role actor.Role, activeOnly bool) ([]*actor.Actor, error) {
	args := m.Called(ctx, role, activeOnly)
	actors, _ := args.Get(0).([]*actor.Actor)
	return actors, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ActorRepository() ports.ActorRepository {
	return m.Called().Get(0).(ports.ActorRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockActorUoWFactory struct{ mock.Mock }

func (m *MockActorUoWFactory) Create() commands.ActorUoW {
	return m.Called().Get(0).(commands.ActorUoW)
}

type MockObserver struct{ mock.Mock }

func (m *MockObserver) TransitionApplied(rec order.TransitionRecord) { m.Called(rec) }

func (m *MockObserver) TransitionRejected(from, to order.Status, reason string) {
	m.Called(from, to, reason)
}

// memoryFactory adapts the in-memory store to every factory shape used by handlers.
type memoryFactory struct{ store *memory.Store }

func (f memoryFactory) uow() commands.UoWFactory {
	return uowFunc(func() commands.UoW { return f.store.Create() })
}
func (f memoryFactory) orderUoW() commands.OrderUoWFactory {
	return orderUoWFunc(func() commands.OrderUoW { return f.store.Create() })
}
func (f memoryFactory) actorUoW() commands.ActorUoWFactory {
	return actorUoWFunc(func() commands.ActorUoW { return f.store.Create() })
}

type uowFunc func() commands.UoW

func (f uowFunc) Create() commands.UoW { return f() }

type orderUoWFunc func() commands.OrderUoW

func (f orderUoWFunc) Create() commands.OrderUoW { return f() }

type actorUoWFunc func() commands.ActorUoW

func (f actorUoWFunc) Create() commands.ActorUoW { return f() }
