package queries

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var ErrListStageOrdersQueryIsNotConstructed = errors.New(
	"ListStageOrdersQuery must be created via NewListStageOrdersQuery constructor",
)

// ListStageOrdersQuery lists the orders visible to role in one of its stages.
// actorID identifies the viewer; it may be zero unless the stage only shows the
// viewer's own assignments.
//
// Example:
//
//	query, err := NewListStageOrdersQuery(actor.Delivery, driverID, services.StagePickups)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListStageOrdersQuery struct {
	role    actor.Role
	actorID kernel.UUID
	stage   services.Stage

	guard guard.ConstructorGuard
}

func NewListStageOrdersQuery(role actor.Role, actorID kernel.UUID, stage services.Stage) (ListStageOrdersQuery, error) {
	if err := role.Validate(); err != nil {
		return ListStageOrdersQuery{}, err
	}

	return ListStageOrdersQuery{
		role:    role,
		actorID: actorID,
		stage:   stage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStageOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListStageOrdersQueryIsNotConstructed)
}

func (q ListStageOrdersQuery) Role() actor.Role { return q.role }

func (q ListStageOrdersQuery) ActorID() kernel.UUID { return q.actorID }

func (q ListStageOrdersQuery) Stage() services.Stage { return q.stage }
