package queries

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrListDeliveryActorsQueryIsNotConstructed = errors.New(
	"ListDeliveryActorsQuery must be created via NewListDeliveryActorsQuery constructor",
)

// ListDeliveryActorsQuery lists the drivers a dispatcher can pick from.
type ListDeliveryActorsQuery struct {
	includeInactive bool

	guard guard.ConstructorGuard
}

func NewListDeliveryActorsQuery(includeInactive bool) ListDeliveryActorsQuery {
	return ListDeliveryActorsQuery{includeInactive: includeInactive, guard: guard.NewConstructorGuard()}
}

func (q ListDeliveryActorsQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryActorsQueryIsNotConstructed)
}

func (q ListDeliveryActorsQuery) IncludeInactive() bool { return q.includeInactive }
