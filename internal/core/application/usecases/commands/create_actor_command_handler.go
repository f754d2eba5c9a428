package commands

import (
	"context"

	"laundry/internal/core/domain/model/actor"
)

type CreateActorCommandHandler struct {
	uowFactory ActorUoWFactory
}

func NewCreateActorCommandHandler(uowFactory ActorUoWFactory) CreateActorCommandHandler {
	return CreateActorCommandHandler{uowFactory: uowFactory}
}

func (h CreateActorCommandHandler) Handle(ctx context.Context, cmd CreateActorCommand) (*actor.Actor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := actor.NewActor(cmd.ActorID(), cmd.Name(), cmd.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ActorRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
