package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// StampPaymentCollected is written when cash on delivery is collected.
const StampPaymentCollected = "paymentCollected"

// StampOverride is written by administrative overrides.
const StampOverride = "override"

// TransitionKind separates guarded workflow moves from administrative overrides.
type TransitionKind int

const (
	GuardedTransition TransitionKind = iota + 1
	OverrideTransition
)

func (k TransitionKind) String() string {
	switch k {
	case GuardedTransition:
		return "guarded"
	case OverrideTransition:
		return "override"
	default:
		return "unknown"
	}
}

func ParseTransitionKind(s string) TransitionKind {
	switch s {
	case "guarded":
		return GuardedTransition
	case "override":
		return OverrideTransition
	default:
		return 0
	}
}

// Change is the complete set of writes for one transition: the status move plus the
// audit stamp and any edge side effects.
type Change struct {
	From            Status
	To              Status
	Kind            TransitionKind
	Stamp           string
	By              AuditStamp
	Assignment      *Assignment
	ClearAssignment bool
	Rack            RackNumber
	TagNumber       string
	MarkPaid        bool
	ReworkReason    string
	Note            string
}

func (c Change) Validate() error {
	var errList []error
	if err := c.From.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := c.To.Validate(); err != nil {
		errList = append(errList, err)
	}
	if c.Kind != GuardedTransition && c.Kind != OverrideTransition {
		errList = append(errList, errs.NewValueIsInvalidError("transition kind"))
	}
	if c.By.At.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("stamp time"))
	}
	if c.Assignment != nil && c.ClearAssignment {
		errList = append(errList, errs.NewValueIsInvalidError("assignment set and cleared together"))
	}
	return errors.Join(errList...)
}

// FieldsPatch updates non-workflow fields. Nil members are left unchanged.
type FieldsPatch struct {
	Notes    *string
	Customer *Customer
}

// TransitionRecord is the history entry persisted for every applied change.
type TransitionRecord struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	From      Status
	To        Status
	Kind      TransitionKind
	ActorID   kernel.UUID
	ActorName string
	Role      actor.Role
	At        time.Time
	Note      string
}
