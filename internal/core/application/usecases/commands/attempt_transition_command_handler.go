package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// AttemptTransitionCommandHandler moves an order along one guarded edge.
//
// The order is re-fetched to obtain the expected pre-state, the edge and role are
// checked, the guards run, and a single conditional write commits the status together
// with its audit stamp and side effects. Nothing is written when a guard rejects, and
// a concurrent change surfaces as errs.StaleStateError without any retry.
type AttemptTransitionCommandHandler struct {
	uowFactory UoWFactory
	guards     services.GuardEvaluator
	clock      kernel.Clock
	observer   ports.TransitionObserver
}

func NewAttemptTransitionCommandHandler(
	uowFactory UoWFactory,
	clock kernel.Clock,
	observer ports.TransitionObserver,
) AttemptTransitionCommandHandler {
	if observer == nil {
		observer = noopObserver{}
	}
	return AttemptTransitionCommandHandler{
		uowFactory: uowFactory,
		guards:     services.NewGuardEvaluator(),
		clock:      clock,
		observer:   observer,
	}
}

func (h AttemptTransitionCommandHandler) Handle(ctx context.Context, cmd AttemptTransitionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	from := current.Status()
	gc := cmd.GuardContext()

	result := h.guards.Evaluate(cmd.Performer().Role, current, from, cmd.To(), gc)
	if !result.OK {
		h.observer.TransitionRejected(from, cmd.To(), result.Reason)
		return nil, errs.NewGuardRejectionError(result.Reason, from.String(), cmd.To().String())
	}
	if len(result.Warnings) > 0 && !cmd.AcknowledgeWarnings() {
		return nil, errs.NewPaymentWarningError(result.Warnings...)
	}

	change, err := h.buildChange(ctx, uow, current, cmd)
	if err != nil {
		return nil, err
	}

	record, err := current.Apply(change)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, current, from); err != nil {
		var stale *errs.StaleStateError
		if errors.As(err, &stale) {
			h.observer.TransitionRejected(from, cmd.To(), "stale-state")
		}
		return nil, err
	}

	if err = orderRepo.AddTransition(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.observer.TransitionApplied(record)
	return current, nil
}

func (h AttemptTransitionCommandHandler) buildChange(
	ctx context.Context,
	uow UoW,
	current *order.Order,
	cmd AttemptTransitionCommand,
) (order.Change, error) {
	from := current.Status()
	edge, _ := order.EdgeBetween(from, cmd.To())
	gc := cmd.GuardContext()
	by := cmd.Performer().stamp(h.clock)

	change := order.Change{
		From:  from,
		To:    cmd.To(),
		Kind:  order.GuardedTransition,
		Stamp: edge.Stamp,
		By:    by,
		Note:  cmd.Note(),
	}

	if edge.Effects.Has(order.EffectAssign) {
		driver, err := uow.ActorRepository().Get(ctx, gc.DeliveryActorID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return order.Change{}, errs.NewGuardRejectionError(services.ReasonNoDeliveryPerson, from.String(), cmd.To().String())
		}
		if err != nil {
			return order.Change{}, err
		}
		if err = driver.CanDeliver(); err != nil {
			return order.Change{}, errs.NewGuardRejectionError(services.ReasonNoDeliveryPerson, from.String(), cmd.To().String())
		}
		assignment, err := order.NewAssignment(driver.ID(), driver.Name(), by.At)
		if err != nil {
			return order.Change{}, err
		}
		change.Assignment = &assignment
	}
	if edge.Effects.Has(order.EffectClearAssignment) {
		change.ClearAssignment = true
	}
	if edge.Effects.Has(order.EffectSetRack) {
		rack, err := order.NewRackNumber(gc.RackNumber)
		if err != nil {
			return order.Change{}, err
		}
		change.Rack = rack
	}
	if edge.Effects.Has(order.EffectPrintTag) {
		change.TagNumber = order.TagNumberFor(current.TicketNumber())
	}
	if edge.Effects.Has(order.EffectCollectPayment) {
		change.MarkPaid = gc.PaymentCollected
	}
	if edge.Effects.Has(order.EffectRework) {
		change.ReworkReason = order.ReworkReasonQCFailed
	}

	return change, nil
}

type noopObserver struct{}

func (noopObserver) TransitionApplied(order.TransitionRecord) {}

func (noopObserver) TransitionRejected(order.Status, order.Status, string) {}
