package queries

import (
	"context"

	"laundry/internal/core/domain/model/actor"
)

type ListDeliveryActorsQueryHandler struct {
	actors ActorReader
}

func NewListDeliveryActorsQueryHandler(actors ActorReader) ListDeliveryActorsQueryHandler {
	return ListDeliveryActorsQueryHandler{actors: actors}
}

func (h ListDeliveryActorsQueryHandler) Handle(ctx context.Context, query ListDeliveryActorsQuery) ([]ActorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actors, err := h.actors.ListByRole(ctx, actor.Delivery, !query.IncludeInactive())
	if err != nil {
		return nil, err
	}

	out := make([]ActorView, 0, len(actors))
	for _, a := range actors {
		out = append(out, ActorView{ID: a.ID(), Name: a.Name(), Role: a.Role(), Active: a.IsActive()})
	}
	return out, nil
}
