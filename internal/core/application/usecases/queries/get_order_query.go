package queries

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its transition history. role scopes the list of
// destinations the viewer may attempt next.
type GetOrderQuery struct {
	orderID kernel.UUID
	role    actor.Role

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, role actor.Role) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), role.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetOrderQuery) Role() actor.Role { return q.role }
