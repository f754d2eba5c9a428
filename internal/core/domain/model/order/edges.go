package order

import (
	"laundry/internal/core/domain/model/actor"
)

// GuardKind names a precondition attached to an edge.
type GuardKind int

const (
	// ItemsFullyVerified requires every item to be checked off.
	ItemsFullyVerified GuardKind = iota + 1
	// ValidRackFormat requires a rack number matching RackPattern.
	ValidRackFormat
	// DeliveryPersonSelected requires a delivery actor reference.
	DeliveryPersonSelected
	// PaymentAcknowledged is soft: an unpaid order yields a warning, not a rejection.
	PaymentAcknowledged
	// QCOutcomeBranch requires a pass/fail outcome that selects the destination.
	QCOutcomeBranch
	// StagePhase disambiguates the two stages sharing Ready for Pickup.
	StagePhase
)

func (g GuardKind) String() string {
	switch g {
	case ItemsFullyVerified:
		return "ItemsFullyVerified"
	case ValidRackFormat:
		return "ValidRackFormat"
	case DeliveryPersonSelected:
		return "DeliveryPersonSelected"
	case PaymentAcknowledged:
		return "PaymentAcknowledged"
	case QCOutcomeBranch:
		return "QCOutcomeBranch"
	case StagePhase:
		return "StagePhase"
	default:
		return "Unknown"
	}
}

// Phase distinguishes the collection and dispatch stages of Ready for Pickup.
type Phase int

const (
	AnyPhase Phase = iota
	// CollectionPhase: awaiting pickup from the customer, no rack assigned.
	CollectionPhase
	// DispatchPhase: packed and racked, awaiting dispatch.
	DispatchPhase
)

// QCOutcome is the inspection result entered at Quality Check.
type QCOutcome int

const (
	NoOutcome QCOutcome = iota
	QCPass
	QCFail
)

// ParseQCOutcome accepts "pass" or "fail"; anything else is NoOutcome.
func ParseQCOutcome(s string) QCOutcome {
	switch s {
	case "pass":
		return QCPass
	case "fail":
		return QCFail
	default:
		return NoOutcome
	}
}

func (o QCOutcome) String() string {
	switch o {
	case QCPass:
		return "pass"
	case QCFail:
		return "fail"
	default:
		return ""
	}
}

// Effect is a side effect applied together with an edge's status write.
type Effect uint8

const (
	EffectAssign Effect = 1 << iota
	EffectClearAssignment
	EffectSetRack
	EffectPrintTag
	EffectCollectPayment
	EffectRework
)

func (e Effect) Has(flag Effect) bool {
	return e&flag != 0
}

// ReworkReasonQCFailed is recorded when an order is sent back from Quality Check.
const ReworkReasonQCFailed = "Quality Check Failed"

// Edge is one permitted transition of the status graph.
type Edge struct {
	From    Status
	To      Status
	Roles   []actor.Role
	Guards  []GuardKind
	Phase   Phase
	Outcome QCOutcome
	Effects Effect
	// Stamp is the audit key written on success, e.g. "pickedUp".
	Stamp string
}

// Permits reports whether role may invoke the edge. Admin may invoke every edge.
func (e Edge) Permits(role actor.Role) bool {
	if role == actor.Admin {
		return true
	}
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasGuard reports whether kind is attached to the edge.
func (e Edge) HasGuard(kind GuardKind) bool {
	for _, g := range e.Guards {
		if g == kind {
			return true
		}
	}
	return false
}

var edges = []Edge{
	{
		From: Received, To: ReadyForPickup,
		Roles:   []actor.Role{actor.FrontDesk},
		Guards:  []GuardKind{DeliveryPersonSelected},
		Effects: EffectAssign,
		Stamp:   "pickupScheduled",
	},
	{
		From: Received, To: Cancelled,
		Roles: []actor.Role{actor.FrontDesk},
		Stamp: "cancelled",
	},
	{
		From: ReadyForPickup, To: ReceivedInWorkshop,
		Roles:  []actor.Role{actor.Delivery},
		Guards: []GuardKind{StagePhase, ItemsFullyVerified},
		Phase:  CollectionPhase,
		Stamp:  "pickedUp",
	},
	{
		From: ReceivedInWorkshop, To: TagPrinted,
		Roles:   []actor.Role{actor.BackOffice},
		Effects: EffectPrintTag,
		Stamp:   "tagPrinted",
	},
	{
		From: TagPrinted, To: ReadyForProcessing,
		Roles: []actor.Role{actor.BackOffice},
		Stamp: "readyForProcessing",
	},
	{
		From: ReadyForProcessing, To: Sorting,
		Roles: []actor.Role{actor.Operations},
		Stamp: "sorting",
	},
	{
		From: Sorting, To: Spotting,
		Roles: []actor.Role{actor.Operations},
		Stamp: "spotting",
	},
	{
		From: Sorting, To: Return,
		Roles:   []actor.Role{actor.Operations},
		Effects: EffectClearAssignment,
		Stamp:   "returned",
	},
	{
		From: Spotting, To: DryCleaning,
		Roles: []actor.Role{actor.DryCleaner},
		Stamp: "dryCleaning",
	},
	{
		From: DryCleaning, To: Ironing,
		Roles: []actor.Role{actor.DryCleaner},
		Stamp: "ironing",
	},
	{
		From: Ironing, To: QualityCheck,
		Roles: []actor.Role{actor.DryCleaner},
		Stamp: "qualityCheck",
	},
	{
		From: QualityCheck, To: Packing,
		Roles:   []actor.Role{actor.DryCleaner},
		Guards:  []GuardKind{ItemsFullyVerified, QCOutcomeBranch},
		Outcome: QCPass,
		Stamp:   "packing",
	},
	{
		From: QualityCheck, To: Spotting,
		Roles:   []actor.Role{actor.DryCleaner},
		Guards:  []GuardKind{ItemsFullyVerified, QCOutcomeBranch},
		Outcome: QCFail,
		Effects: EffectRework,
		Stamp:   "rework",
	},
	{
		From: Packing, To: ReadyForPickup,
		Roles:   []actor.Role{actor.LinenTracker},
		Guards:  []GuardKind{ValidRackFormat},
		Effects: EffectSetRack,
		Stamp:   "racked",
	},
	{
		From: ReadyForPickup, To: OutForDelivery,
		Roles:   []actor.Role{actor.LinenTracker},
		Guards:  []GuardKind{StagePhase, DeliveryPersonSelected},
		Phase:   DispatchPhase,
		Effects: EffectAssign,
		Stamp:   "dispatched",
	},
	{
		From: Return, To: OutForDelivery,
		Roles:   []actor.Role{actor.FrontDesk},
		Guards:  []GuardKind{DeliveryPersonSelected},
		Effects: EffectAssign,
		Stamp:   "dispatched",
	},
	{
		From: OutForDelivery, To: Delivered,
		Roles:   []actor.Role{actor.Delivery},
		Guards:  []GuardKind{ItemsFullyVerified, PaymentAcknowledged},
		Effects: EffectCollectPayment,
		Stamp:   "delivered",
	},
}

// Edges returns a copy of the full transition table.
func Edges() []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// EdgesFrom lists the destinations reachable from s through guarded transitions.
// Terminal statuses have none.
func EdgesFrom(s Status) []Status {
	out := make([]Status, 0, 2)
	for _, e := range edges {
		if e.From == s {
			out = append(out, e.To)
		}
	}
	return out
}

// EdgeBetween looks up the edge from -> to.
func EdgeBetween(from, to Status) (Edge, bool) {
	for _, e := range edges {
		if e.From == from && e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}

// IsTerminal reports whether s is absorbing.
func IsTerminal(s Status) bool {
	return s.IsTerminal()
}
