package commands

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// OverrideStatusCommandHandler lets an admin set any status directly. It skips the graph
// and the guards but shares the conditional write and audit trail of guarded transitions;
// the history entry is recorded with kind "override".
type OverrideStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	observer   ports.TransitionObserver
}

func NewOverrideStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	observer ports.TransitionObserver,
) OverrideStatusCommandHandler {
	if observer == nil {
		observer = noopObserver{}
	}
	return OverrideStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		observer:   observer,
	}
}

func (h OverrideStatusCommandHandler) Handle(ctx context.Context, cmd OverrideStatusCommand) (*order.Order, error) {
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

	if cmd.Performer().Role != actor.Admin {
		h.observer.TransitionRejected(from, cmd.To(), services.ReasonRoleNotPermitted)
		return nil, errs.NewGuardRejectionError(services.ReasonRoleNotPermitted, from.String(), cmd.To().String())
	}
	if from == cmd.To() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("order is already %s", from))
	}

	record, err := current.Apply(order.Change{
		From:  from,
		To:    cmd.To(),
		Kind:  order.OverrideTransition,
		Stamp: order.StampOverride,
		By:    cmd.Performer().stamp(h.clock),
		Note:  cmd.Note(),
	})
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, current, from); err != nil {
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
