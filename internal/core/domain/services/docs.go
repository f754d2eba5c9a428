// Package services holds the stateless domain services of the laundry workflow.
//
// The package includes:
//   - GuardEvaluator: decides whether a role may move an order along an edge right now
//   - VerificationSet: the per-attempt item checklist consumed by ItemsFullyVerified
//   - StageRouter: maps a role's dashboard stage to an order filter and its next status
//   - StatsAggregator: per-stage counts computed with exactly the router's filters
//
// None of these services touch storage; callers pass orders in.
package services
