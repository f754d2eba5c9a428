package services

import (
	"fmt"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Stage is a role-scoped dashboard view of the pipeline.
type Stage string

const (
	StageNewOrders    Stage = "neworders"
	StagePickups      Stage = "pickups"
	StageReturns      Stage = "returns"
	StageDeliveries   Stage = "deliveries"
	StageReceived     Stage = "received"
	StageTagged       Stage = "tagged"
	StageReady        Stage = "ready"
	StageSorting      Stage = "sorting"
	StageSpotting     Stage = "spotting"
	StageDryCleaning  Stage = "drycleaning"
	StageIroning      Stage = "ironing"
	StageQualityCheck Stage = "qualitycheck"
	StagePacking      Stage = "packing"
	StageDispatch     Stage = "dispatch"
	StageAll          Stage = "all"
)

type stageDef struct {
	role       actor.Role
	stage      Stage
	statuses   []order.Status
	assignment order.AssignmentPredicate
	rack       order.RackPredicate
	next       order.Status
	outcomes   map[string]order.Status
}

// Stage definitions in dashboard order per role.
var stageTable = []stageDef{
	{role: actor.FrontDesk, stage: StageNewOrders, statuses: []order.Status{order.Received},
		assignment: order.Unassigned, next: order.ReadyForPickup},
	{role: actor.FrontDesk, stage: StagePickups, statuses: []order.Status{order.ReadyForPickup},
		rack: order.WithoutRack, next: order.ReceivedInWorkshop},
	{role: actor.FrontDesk, stage: StageReturns, statuses: []order.Status{order.Return},
		assignment: order.Unassigned, next: order.OutForDelivery},

	{role: actor.Delivery, stage: StagePickups, statuses: []order.Status{order.ReadyForPickup},
		rack: order.WithoutRack, assignment: order.AssignedToActor, next: order.ReceivedInWorkshop},
	{role: actor.Delivery, stage: StageDeliveries, statuses: []order.Status{order.OutForDelivery},
		assignment: order.AssignedToActor, next: order.Delivered},

	{role: actor.BackOffice, stage: StageReceived, statuses: []order.Status{order.ReceivedInWorkshop},
		next: order.TagPrinted},
	{role: actor.BackOffice, stage: StageTagged, statuses: []order.Status{order.TagPrinted},
		next: order.ReadyForProcessing},

	{role: actor.Operations, stage: StageReady, statuses: []order.Status{order.ReadyForProcessing},
		next: order.Sorting},
	{role: actor.Operations, stage: StageSorting, statuses: []order.Status{order.Sorting},
		next: order.Spotting, outcomes: map[string]order.Status{"return": order.Return}},

	{role: actor.DryCleaner, stage: StageSpotting, statuses: []order.Status{order.Spotting},
		next: order.DryCleaning},
	{role: actor.DryCleaner, stage: StageDryCleaning, statuses: []order.Status{order.DryCleaning},
		next: order.Ironing},
	{role: actor.DryCleaner, stage: StageIroning, statuses: []order.Status{order.Ironing},
		next: order.QualityCheck},
	{role: actor.DryCleaner, stage: StageQualityCheck, statuses: []order.Status{order.QualityCheck},
		outcomes: map[string]order.Status{order.QCPass.String(): order.Packing, order.QCFail.String(): order.Spotting}},

	{role: actor.LinenTracker, stage: StagePacking, statuses: []order.Status{order.Packing},
		next: order.ReadyForPickup},
	{role: actor.LinenTracker, stage: StageDispatch, statuses: []order.Status{order.ReadyForPickup},
		rack: order.WithRack, next: order.OutForDelivery},

	{role: actor.Admin, stage: StageAll},
}

// StageRouter maps (role, stage) to order filters and next statuses. It carries no guard logic.
type StageRouter struct{}

func NewStageRouter() StageRouter {
	return StageRouter{}
}

// Stages lists the stages visible to role in dashboard order.
func (StageRouter) Stages(role actor.Role) []Stage {
	out := make([]Stage, 0, 4)
	for _, d := range stageTable {
		if d.role == role {
			out = append(out, d.stage)
		}
	}
	return out
}

// FilterFor returns the filter listing the orders of stage. self identifies the viewing
// actor and is required for stages restricted to the viewer's own assignments.
func (r StageRouter) FilterFor(role actor.Role, self kernel.UUID, stage Stage) (order.Filter, error) {
	d, err := r.lookup(role, stage)
	if err != nil {
		return order.Filter{}, err
	}

	f := order.Filter{
		Statuses:   append([]order.Status(nil), d.statuses...),
		Assignment: d.assignment,
		Rack:       d.rack,
	}
	if d.assignment == order.AssignedToActor {
		if err = self.Validate(); err != nil {
			return order.Filter{}, errs.NewValueIsRequiredErrorWithCause("actorId", err)
		}
		f.AssignedTo = self
	}
	return f, nil
}

// NextStatus returns the status an order in stage moves to. outcome selects a branch
// ("return" at sorting, "pass"/"fail" at quality check); empty means the default path.
func (r StageRouter) NextStatus(role actor.Role, stage Stage, outcome string) (order.Status, error) {
	d, err := r.lookup(role, stage)
	if err != nil {
		return order.Unknown, err
	}
	if outcome != "" {
		if to, ok := d.outcomes[outcome]; ok {
			return to, nil
		}
		return order.Unknown, errs.NewValueIsInvalidErrorWithCause(
			"outcome", fmt.Errorf("%q is not an outcome of stage %s", outcome, stage))
	}
	if d.next == order.Unknown {
		return order.Unknown, errs.NewValueIsRequiredErrorWithCause(
			"outcome", fmt.Errorf("stage %s has no default next status", stage))
	}
	return d.next, nil
}

func (StageRouter) lookup(role actor.Role, stage Stage) (stageDef, error) {
	for _, d := range stageTable {
		if d.role == role && d.stage == stage {
			return d, nil
		}
	}
	return stageDef{}, errs.NewValueIsInvalidErrorWithCause(
		"stage", fmt.Errorf("stage %q is not available to role %s", stage, role))
}
