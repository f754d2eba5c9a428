package ports

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
)

// ActorRepository stores the operators that can be referenced by assignments.
type ActorRepository interface {
	Add(ctx context.Context, aggregate *actor.Actor) error
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)
	// ListByRole returns actors of role ordered by name. activeOnly skips deactivated actors.
	ListByRole(ctx context.Context, role actor.Role, activeOnly bool) ([]*actor.Actor, error)
}
