package queries

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetStageCountsQueryIsNotConstructed = errors.New(
	"GetStageCountsQuery must be created via NewGetStageCountsQuery constructor",
)

// GetStageCountsQuery asks for the dashboard tile counts of every stage of role.
type GetStageCountsQuery struct {
	role    actor.Role
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStageCountsQuery(role actor.Role, actorID kernel.UUID) (GetStageCountsQuery, error) {
	if err := role.Validate(); err != nil {
		return GetStageCountsQuery{}, err
	}
	if role == actor.Delivery {
		if err := actorID.Validate(); err != nil {
			return GetStageCountsQuery{}, err
		}
	}

	return GetStageCountsQuery{
		role:    role,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetStageCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStageCountsQueryIsNotConstructed)
}

func (q GetStageCountsQuery) Role() actor.Role { return q.role }

func (q GetStageCountsQuery) ActorID() kernel.UUID { return q.actorID }
