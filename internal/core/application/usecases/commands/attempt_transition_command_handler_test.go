package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"laundry/internal/adapters/out/memory"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func performer(role actor.Role) commands.Performer {
	return commands.Performer{Role: role, ActorID: kernel.NewUUID(), ActorName: role.String() + "-operator"}
}

func restoredOrder(t *testing.T, status order.Status, rack string) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, 3)
	for _, in := range threeItems() {
		item, err := order.NewItem(in.Description, in.Quantity, in.UnitPrice, "", nil)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.RestoreOrder(order.Snapshot{
		ID: kernel.NewUUID(), TicketNumber: "T-001", Status: status, Items: items,
		Customer: order.Customer{Name: "Ada"}, RackNumber: rack,
		CreatedAt: testClock.At, UpdatedAt: testClock.At,
	})
	require.NoError(t, err)
	return o
}

func transitionCmd(
	t *testing.T, id kernel.UUID, role actor.Role, to order.Status, gc services.GuardContext, ack bool,
) commands.AttemptTransitionCommand {
	t.Helper()
	cmd, err := commands.NewAttemptTransitionCommand(id, performer(role), to, gc, ack, "")
	require.NoError(t, err)
	return cmd
}

func TestNewAttemptTransitionCommand(t *testing.T) {
	_, err := commands.NewAttemptTransitionCommand(kernel.UUID{}, commands.Performer{}, order.Unknown, services.GuardContext{}, false, "")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero commands.AttemptTransitionCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrAttemptTransitionCommandIsNotConstructed)
}

func TestAttemptTransitionCommandHandler_GuardRejectionWritesNothing(t *testing.T) {
	tests := []struct {
		name   string
		order  func(t *testing.T) *order.Order
		role   actor.Role
		to     order.Status
		gc     services.GuardContext
		reason string
	}{
		{
			name:   "three items two verified",
			order:  func(t *testing.T) *order.Order { return restoredOrder(t, order.ReadyForPickup, "") },
			role:   actor.Delivery,
			to:     order.ReceivedInWorkshop,
			gc:     services.GuardContext{Verification: services.NewVerificationSet(0, 1)},
			reason: services.ReasonUnverifiedItems,
		},
		{
			name:   "rack B",
			order:  func(t *testing.T) *order.Order { return restoredOrder(t, order.Packing, "") },
			role:   actor.LinenTracker,
			to:     order.ReadyForPickup,
			gc:     services.GuardContext{RackNumber: "B"},
			reason: services.ReasonInvalidRackFormat,
		},
		{
			name:   "rack 2B",
			order:  func(t *testing.T) *order.Order { return restoredOrder(t, order.Packing, "") },
			role:   actor.LinenTracker,
			to:     order.ReadyForPickup,
			gc:     services.GuardContext{RackNumber: "2B"},
			reason: services.ReasonInvalidRackFormat,
		},
		{
			name:   "wrong role",
			order:  func(t *testing.T) *order.Order { return restoredOrder(t, order.Sorting, "") },
			role:   actor.BackOffice,
			to:     order.Spotting,
			reason: services.ReasonRoleNotPermitted,
		},
		{
			name:   "not an edge",
			order:  func(t *testing.T) *order.Order { return restoredOrder(t, order.Received, "") },
			role:   actor.Admin,
			to:     order.Refund,
			reason: services.ReasonNotAnEdge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			current := tt.order(t)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockUoWFactory)
			factory.On("Create").Return(uow).Once()
			observer := new(MockObserver)
			observer.On("TransitionRejected", current.Status(), tt.to, tt.reason).Once()

			h := commands.NewAttemptTransitionCommandHandler(factory, testClock, observer)
			_, err := h.Handle(ctx, transitionCmd(t, current.ID(), tt.role, tt.to, tt.gc, false))

			var rejection *errs.GuardRejectionError
			require.ErrorAs(t, err, &rejection)
			assert.Equal(t, tt.reason, rejection.Reason)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "AddTransition", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			uow.AssertExpectations(t)
			observer.AssertExpectations(t)
		})
	}
}

func TestAttemptTransitionCommandHandler_Success(t *testing.T) {
	ctx := context.Background()
	current := restoredOrder(t, order.Packing, "")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		repo.On("UpdateStatus", ctx, current, order.Packing).Return(nil).Once(),
		repo.On("AddTransition", ctx, mock.MatchedBy(func(rec order.TransitionRecord) bool {
			return rec.From == order.Packing && rec.To == order.ReadyForPickup && rec.Kind == order.GuardedTransition
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	observer := new(MockObserver)
	observer.On("TransitionApplied", mock.AnythingOfType("order.TransitionRecord")).Once()

	h := commands.NewAttemptTransitionCommandHandler(factory, testClock, observer)
	updated, err := h.Handle(ctx, transitionCmd(t, current.ID(), actor.LinenTracker, order.ReadyForPickup,
		services.GuardContext{RackNumber: "B2"}, false))

	require.NoError(t, err)
	assert.Equal(t, order.ReadyForPickup, updated.Status())
	assert.Equal(t, "B2", updated.RackNumber().String())
	assert.Equal(t, order.DispatchPhase, updated.Phase())
	racked, ok := updated.Stamp("racked")
	require.True(t, ok)
	assert.Equal(t, testClock.At, racked.At)
	assert.Equal(t, actor.LinenTracker, racked.Role)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	observer.AssertExpectations(t)
}

func TestAttemptTransitionCommandHandler_PaymentWarning(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	factories := memoryFactory{store: store}
	current := restoredOrder(t, order.OutForDelivery, "D3")
	require.NoError(t, store.OrderRepository().Add(ctx, current))

	h := commands.NewAttemptTransitionCommandHandler(factories.uow(), testClock, nil)
	all := services.NewVerificationSet(0, 1, 2)

	_, err := h.Handle(ctx, transitionCmd(t, current.ID(), actor.Delivery, order.Delivered,
		services.GuardContext{Verification: all}, false))

	var warning *errs.PaymentWarningError
	require.ErrorAs(t, err, &warning)
	assert.Equal(t, []string{services.WarningPaymentNotCollected}, warning.Warnings)
	stored, err := store.OrderRepository().Get(ctx, current.ID())
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, stored.Status(), "warning must not write")

	delivered, err := h.Handle(ctx, transitionCmd(t, current.ID(), actor.Delivery, order.Delivered,
		services.GuardContext{Verification: all}, true))

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivered.Status())
	assert.Equal(t, order.PaymentPending, delivered.PaymentStatus(), "acknowledged without collection stays pending")
}

func TestAttemptTransitionCommandHandler_RejectsUnknownOrInactiveDeliveryActor(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	factories := memoryFactory{store: store}
	current := restoredOrder(t, order.Received, "")
	require.NoError(t, store.OrderRepository().Add(ctx, current))

	clerk, err := actor.NewActor(kernel.NewUUID(), "Clerk", actor.FrontDesk)
	require.NoError(t, err)
	require.NoError(t, store.ActorRepository().Add(ctx, clerk))

	h := commands.NewAttemptTransitionCommandHandler(factories.uow(), testClock, nil)

	for _, id := range []kernel.UUID{kernel.NewUUID(), clerk.ID()} {
		_, err = h.Handle(ctx, transitionCmd(t, current.ID(), actor.FrontDesk, order.ReadyForPickup,
			services.GuardContext{DeliveryActorID: id}, false))

		var rejection *errs.GuardRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, services.ReasonNoDeliveryPerson, rejection.Reason)
	}
}

func TestAttemptTransitionCommandHandler_StoreFailures(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		h := commands.NewAttemptTransitionCommandHandler(memoryFactory{store: memory.NewStore()}.uow(), testClock, nil)

		_, err := h.Handle(context.Background(), transitionCmd(t, kernel.NewUUID(), actor.Operations, order.Sorting,
			services.GuardContext{}, false))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("transport", func(t *testing.T) {
		store := memory.NewStore()
		store.SetFault(errors.New("network down"))
		h := commands.NewAttemptTransitionCommandHandler(memoryFactory{store: store}.uow(), testClock, nil)

		_, err := h.Handle(context.Background(), transitionCmd(t, kernel.NewUUID(), actor.Operations, order.Sorting,
			services.GuardContext{}, false))

		require.ErrorIs(t, err, errs.ErrTransport)
	})
}

// barrierRepo holds every Get until all sessions have read the same pre-state.
type barrierRepo struct {
	ports.OrderRepository
	barrier *sync.WaitGroup
}

func (r barrierRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, err := r.OrderRepository.Get(ctx, id)
	r.barrier.Done()
	r.barrier.Wait()
	return o, err
}

type barrierUoW struct {
	commands.UoW
	barrier *sync.WaitGroup
}

func (u barrierUoW) OrderRepository() ports.OrderRepository {
	return barrierRepo{OrderRepository: u.UoW.OrderRepository(), barrier: u.barrier}
}

func TestAttemptTransitionCommandHandler_ConcurrentAttemptsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	current := restoredOrder(t, order.Sorting, "")
	require.NoError(t, store.OrderRepository().Add(ctx, current))

	targets := []order.Status{order.Spotting, order.Return}
	var barrier sync.WaitGroup
	barrier.Add(len(targets))
	factory := uowFunc(func() commands.UoW { return barrierUoW{UoW: store.Create(), barrier: &barrier} })
	h := commands.NewAttemptTransitionCommandHandler(factory, testClock, nil)

	results := make([]error, len(targets))
	updated := make([]*order.Order, len(targets))
	var done sync.WaitGroup
	for i, to := range targets {
		i := i
		cmd := transitionCmd(t, current.ID(), actor.Operations, to, services.GuardContext{}, false)
		done.Add(1)
		go func() {
			defer done.Done()
			updated[i], results[i] = h.Handle(ctx, cmd)
		}()
	}
	done.Wait()

	winners, stale := 0, 0
	var winnerTarget order.Status
	for i, err := range results {
		switch {
		case err == nil:
			winners++
			winnerTarget = updated[i].Status()
		case errors.Is(err, errs.ErrStaleState):
			stale++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, stale)

	stored, err := store.OrderRepository().Get(ctx, current.ID())
	require.NoError(t, err)
	assert.Equal(t, winnerTarget, stored.Status())

	history, err := store.OrderRepository().ListTransitions(ctx, current.ID())
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAttemptTransitionCommandHandler_StaleWriteIsReported(t *testing.T) {
	ctx := context.Background()
	current := restoredOrder(t, order.Sorting, "")
	staleErr := errs.NewStaleStateError(current.ID().String(), "Sorting", "Return")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		repo.On("UpdateStatus", ctx, current, order.Sorting).Return(staleErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	observer := new(MockObserver)
	observer.On("TransitionRejected", order.Sorting, order.Spotting, "stale-state").Once()

	h := commands.NewAttemptTransitionCommandHandler(factory, testClock, observer)
	_, err := h.Handle(ctx, transitionCmd(t, current.ID(), actor.Operations, order.Spotting, services.GuardContext{}, false))

	require.ErrorIs(t, err, errs.ErrStaleState)
	repo.AssertNotCalled(t, "AddTransition", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	observer.AssertExpectations(t)
}
