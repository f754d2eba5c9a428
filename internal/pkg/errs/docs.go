// Package errs provides standardized error types for the laundry workflow service.
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Besides the generic validation and lookup errors the package defines the
// workflow taxonomy surfaced to callers of the transition engine:
//   - GuardRejectionError: a business rule blocked a transition (never retried)
//   - PaymentWarningError: a soft guard that the caller must explicitly acknowledge
//   - StaleStateError: the stored status changed underneath the caller
//   - TransportError: the order store could not be reached
//   - NotifierFaultError: a polling tick failed; logged, never propagated to the engine
package errs
