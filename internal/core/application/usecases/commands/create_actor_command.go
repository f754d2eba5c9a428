package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCreateActorCommandIsNotConstructed = errors.New(
	"CreateActorCommand must be created via NewCreateActorCommand constructor",
)

type CreateActorCommand struct {
	actorID kernel.UUID
	name    string
	role    actor.Role

	guard guard.ConstructorGuard
}

func NewCreateActorCommand(actorID kernel.UUID, name string, role actor.Role) (CreateActorCommand, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = actor.ErrNameIsRequired
	}
	if err := errors.Join(actorID.Validate(), nameErr, role.Validate()); err != nil {
		return CreateActorCommand{}, err
	}

	return CreateActorCommand{
		actorID: actorID,
		name:    name,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateActorCommand) Validate() error {
	return c.guard.Validate(ErrCreateActorCommandIsNotConstructed)
}

func (c CreateActorCommand) ActorID() kernel.UUID { return c.actorID }

func (c CreateActorCommand) Name() string { return c.name }

func (c CreateActorCommand) Role() actor.Role { return c.role }
