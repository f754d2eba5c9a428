package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrUpdateOrderFieldsCommandIsNotConstructed = errors.New(
	"UpdateOrderFieldsCommand must be created via NewUpdateOrderFieldsCommand constructor",
)

type UpdateOrderFieldsCommand struct {
	orderID kernel.UUID
	patch   order.FieldsPatch

	guard guard.ConstructorGuard
}

func NewUpdateOrderFieldsCommand(orderID kernel.UUID, patch order.FieldsPatch) (UpdateOrderFieldsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderFieldsCommand{}, err
	}
	if patch.Notes == nil && patch.Customer == nil {
		return UpdateOrderFieldsCommand{}, errs.NewValueIsRequiredError("notes or customer")
	}

	return UpdateOrderFieldsCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderFieldsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderFieldsCommandIsNotConstructed)
}

func (c UpdateOrderFieldsCommand) OrderID() kernel.UUID { return c.orderID }

func (c UpdateOrderFieldsCommand) Patch() order.FieldsPatch { return c.patch }
