package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrOverrideStatusCommandIsNotConstructed = errors.New(
	"OverrideStatusCommand must be created via NewOverrideStatusCommand constructor",
)

type OverrideStatusCommand struct {
	orderID   kernel.UUID
	performer Performer
	to        order.Status
	note      string

	guard guard.ConstructorGuard
}

func NewOverrideStatusCommand(orderID kernel.UUID, performer Performer, to order.Status, note string) (OverrideStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		performer.validate(),
		to.Validate(),
	); err != nil {
		return OverrideStatusCommand{}, err
	}

	return OverrideStatusCommand{
		orderID:   orderID,
		performer: performer,
		to:        to,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideStatusCommandIsNotConstructed)
}

func (c OverrideStatusCommand) OrderID() kernel.UUID { return c.orderID }

func (c OverrideStatusCommand) Performer() Performer { return c.performer }

func (c OverrideStatusCommand) To() order.Status { return c.to }

func (c OverrideStatusCommand) Note() string { return c.note }
