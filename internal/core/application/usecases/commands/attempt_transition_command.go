package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var ErrAttemptTransitionCommandIsNotConstructed = errors.New(
	"AttemptTransitionCommand must be created via NewAttemptTransitionCommand constructor",
)

// Performer identifies who issues a command. Identity is trusted input.
type Performer struct {
	Role      actor.Role
	ActorID   kernel.UUID
	ActorName string
}

func (p Performer) validate() error {
	return p.Role.Validate()
}

func (p Performer) stamp(now kernel.Clock) order.AuditStamp {
	name := strings.TrimSpace(p.ActorName)
	if name == "" {
		name = p.Role.String()
	}
	return order.AuditStamp{At: now.Now(), ByID: p.ActorID, ByName: name, Role: p.Role}
}

type AttemptTransitionCommand struct {
	orderID             kernel.UUID
	performer           Performer
	to                  order.Status
	guardContext        services.GuardContext
	acknowledgeWarnings bool
	note                string

	guard guard.ConstructorGuard
}

func NewAttemptTransitionCommand(
	orderID kernel.UUID,
	performer Performer,
	to order.Status,
	guardContext services.GuardContext,
	acknowledgeWarnings bool,
	note string,
) (AttemptTransitionCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		performer.validate(),
		to.Validate(),
	); err != nil {
		return AttemptTransitionCommand{}, err
	}

	return AttemptTransitionCommand{
		orderID:             orderID,
		performer:           performer,
		to:                  to,
		guardContext:        guardContext,
		acknowledgeWarnings: acknowledgeWarnings,
		note:                note,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (c AttemptTransitionCommand) Validate() error {
	return c.guard.Validate(ErrAttemptTransitionCommandIsNotConstructed)
}

func (c AttemptTransitionCommand) OrderID() kernel.UUID { return c.orderID }

func (c AttemptTransitionCommand) Performer() Performer { return c.performer }

func (c AttemptTransitionCommand) To() order.Status { return c.to }

func (c AttemptTransitionCommand) GuardContext() services.GuardContext { return c.guardContext }

func (c AttemptTransitionCommand) AcknowledgeWarnings() bool { return c.acknowledgeWarnings }

func (c AttemptTransitionCommand) Note() string { return c.note }
