package order

import (
	"slices"

	"laundry/internal/core/domain/model/kernel"
)

// AssignmentPredicate constrains the assignment of listed orders.
type AssignmentPredicate int

const (
	AnyAssignment AssignmentPredicate = iota
	Unassigned
	Assigned
	// AssignedToActor matches orders assigned to Filter.AssignedTo.
	AssignedToActor
)

// RackPredicate constrains the rack presence of listed orders.
type RackPredicate int

const (
	AnyRack RackPredicate = iota
	WithoutRack
	WithRack
)

// Filter selects orders for a stage view or a lookup. Zero-valued fields match everything.
type Filter struct {
	Statuses     []Status
	Assignment   AssignmentPredicate
	AssignedTo   kernel.UUID
	Rack         RackPredicate
	TicketNumber string
	TagNumber    string
}

// Matches evaluates the filter in memory. Persistence adapters translate the same
// predicates into their query language and must agree with this method.
func (f Filter) Matches(o *Order) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, o.status) {
		return false
	}
	switch f.Assignment {
	case Unassigned:
		if o.assignment != nil {
			return false
		}
	case Assigned:
		if o.assignment == nil {
			return false
		}
	case AssignedToActor:
		if !o.IsAssignedTo(f.AssignedTo) {
			return false
		}
	case AnyAssignment:
	}
	switch f.Rack {
	case WithoutRack:
		if !o.rack.IsZero() {
			return false
		}
	case WithRack:
		if o.rack.IsZero() {
			return false
		}
	case AnyRack:
	}
	if f.TicketNumber != "" && f.TicketNumber != o.ticketNumber {
		return false
	}
	if f.TagNumber != "" && f.TagNumber != o.tagNumber {
		return false
	}
	return true
}
