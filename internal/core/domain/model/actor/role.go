package actor

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Role is the operator role an actor works in.
type Role int

const (
	UnknownRole Role = iota
	FrontDesk
	BackOffice
	Operations
	DryCleaner
	LinenTracker
	Delivery
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "unknown",
		FrontDesk:    "frontdesk",
		BackOffice:   "backoffice",
		Operations:   "operations",
		DryCleaner:   "drycleaner",
		LinenTracker: "linentracker",
		Delivery:     "delivery",
		Admin:        "admin",
	}
}

// Roles returns all valid roles.
func Roles() []Role {
	return []Role{FrontDesk, BackOffice, Operations, DryCleaner, LinenTracker, Delivery, Admin}
}

// ParseRole accepts the lower-case role name. "manager" is an alias of admin.
func ParseRole(s string) (Role, error) {
	if s == "manager" {
		return Admin, nil
	}
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if r <= UnknownRole || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(data []byte) error {
	parsed, err := ParseRole(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
