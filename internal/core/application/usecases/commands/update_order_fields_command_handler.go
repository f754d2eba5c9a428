package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

type UpdateOrderFieldsCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewUpdateOrderFieldsCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateOrderFieldsCommandHandler {
	return UpdateOrderFieldsCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateOrderFieldsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderFieldsCommand) (*order.Order, error) {
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

	if err = current.UpdateFields(cmd.Patch(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFields(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
