package actor

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")
	ErrActorIsInactive       = errors.New("actor is inactive")
)

// Actor is an operator known to the workshop. Delivery actors are offered as
// candidates whenever an edge requires a delivery person.
type Actor struct {
	id     kernel.UUID
	name   string
	role   Role
	active bool
	guard  guard.ConstructorGuard
}

func NewActor(id kernel.UUID, name string, role Role) (*Actor, error) {
	return RestoreActor(id, name, role, true)
}

func RestoreActor(id kernel.UUID, name string, role Role, active bool) (*Actor, error) {
	a := &Actor{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Actor) Validate() error {
	if a == nil {
		return ErrActorIsNotConstructed
	}
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Actor) ID() kernel.UUID {
	return a.id
}

func (a *Actor) Name() string {
	return a.name
}

func (a *Actor) Role() Role {
	return a.role
}

func (a *Actor) IsActive() bool {
	return a.active
}

// CanDeliver reports whether the actor may be selected as a delivery person.
func (a *Actor) CanDeliver() error {
	if !a.active {
		return ErrActorIsInactive
	}
	if a.role != Delivery {
		return errs.NewValueIsInvalidError("actor is not a delivery person")
	}
	return nil
}

func (a *Actor) Deactivate() {
	a.active = false
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
