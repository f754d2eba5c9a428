package services

import (
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// Reason codes returned in GuardResult.Reason.
const (
	ReasonNotAnEdge            = "not-an-edge"
	ReasonRoleNotPermitted     = "role-not-permitted"
	ReasonWrongStagePhase      = "wrong-stage-phase"
	ReasonUnverifiedItems      = "unverified-items"
	ReasonInvalidRackFormat    = "invalid-rack-format"
	ReasonNoDeliveryPerson     = "no-delivery-person"
	ReasonMissingQCOutcome     = "missing-qc-outcome"
	WarningPaymentNotCollected = "payment-not-collected"
)

// GuardContext carries the caller-supplied inputs a transition may require.
type GuardContext struct {
	Verification     *VerificationSet
	RackNumber       string
	DeliveryActorID  kernel.UUID
	QCOutcome        order.QCOutcome
	PaymentCollected bool
}

// GuardResult is the outcome of Evaluate. A result may be OK and still carry warnings
// that the caller must acknowledge.
type GuardResult struct {
	OK       bool
	Reason   string
	Warnings []string
}

func reject(reason string) GuardResult {
	return GuardResult{Reason: reason}
}

// GuardEvaluator runs the guards of the edge from -> to. It is pure.
type GuardEvaluator struct{}

func NewGuardEvaluator() GuardEvaluator {
	return GuardEvaluator{}
}

func (GuardEvaluator) Evaluate(
	role actor.Role,
	o *order.Order,
	from, to order.Status,
	gc GuardContext,
) GuardResult {
	edge, ok := order.EdgeBetween(from, to)
	if !ok {
		return reject(ReasonNotAnEdge)
	}
	if !edge.Permits(role) {
		return reject(ReasonRoleNotPermitted)
	}

	result := GuardResult{OK: true}
	for _, kind := range edge.Guards {
		switch kind {
		case order.StagePhase:
			if o.Phase() != edge.Phase {
				return reject(ReasonWrongStagePhase)
			}
		case order.ItemsFullyVerified:
			if !gc.Verification.AllVerified(o.ItemCount()) {
				return reject(ReasonUnverifiedItems)
			}
		case order.ValidRackFormat:
			if !order.RackPattern.MatchString(gc.RackNumber) {
				return reject(ReasonInvalidRackFormat)
			}
		case order.DeliveryPersonSelected:
			if gc.DeliveryActorID.IsZero() {
				return reject(ReasonNoDeliveryPerson)
			}
		case order.QCOutcomeBranch:
			if gc.QCOutcome != edge.Outcome {
				return reject(ReasonMissingQCOutcome)
			}
		case order.PaymentAcknowledged:
			if o.PaymentStatus() != order.PaymentPaid && !gc.PaymentCollected {
				result.Warnings = append(result.Warnings, WarningPaymentNotCollected)
			}
		}
	}

	return result
}
