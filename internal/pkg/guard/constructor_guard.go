// Package guard holds the constructor guard shared by the domain value objects and
// aggregates.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the caller
// passes a nil error, so validation of a zero value always fails with a message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only used after being built
// by their constructor. A struct embeds a guard, the constructor sets it, and the
// zero value of the struct fails validation.
//
// Commands embed it so that a handler never acts on a command assembled field by field,
// which would skip the checks done in its constructor.
//
// Example usage:
//
//	var ErrRackNotConstructed = errors.New("Rack must be created via NewRack")
//
//	type Rack struct {
//	    number string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRack(number string) (Rack, error) {
//	    number = strings.TrimSpace(number)
//	    if number == "" {
//	        return Rack{}, errs.NewValueIsRequiredError("number")
//	    }
//	    return Rack{number: number, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Rack) Validate() error {
//	    return r.guard.Validate(ErrRackNotConstructed)
//	}
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed. Call it only
// from the owner's constructor, after every invariant has been checked.
//
// Example:
//
//	func NewCreateActorCommand(id kernel.UUID, name string, role actor.Role) (CreateActorCommand, error) {
//	    if strings.TrimSpace(name) == "" {
//	        return CreateActorCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return CreateActorCommand{
//	        id:    id,
//	        name:  name,
//	        role:  role,
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate reports whether the owner was built by its constructor.
//
// For a zero-value guard it returns err, or ErrDefaultConstructorGuard when err is nil.
// A constructed guard always returns nil.
//
// Example:
//
//	var ErrCreateActorCommandIsNotConstructed = errors.New("CreateActorCommand must be created via NewCreateActorCommand")
//
//	func (c CreateActorCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateActorCommandIsNotConstructed)
//	}
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
