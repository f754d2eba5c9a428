package errs

import (
	"errors"
	"fmt"
)

var (
	ErrGuardRejected  = errors.New("transition rejected")
	ErrPaymentWarning = errors.New("payment not collected")
	ErrStaleState     = errors.New("stale state")
	ErrTransport      = errors.New("transport failure")
	ErrNotifierFault  = errors.New("notifier fault")
)

// GuardRejectionError is returned when a business guard blocks a transition.
// Reason is a stable machine-readable code such as "unverified-items".
type GuardRejectionError struct {
	Reason string
	From   string
	To     string
}

func NewGuardRejectionError(reason, from, to string) *GuardRejectionError {
	return &GuardRejectionError{Reason: reason, From: from, To: to}
}

func (e *GuardRejectionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", ErrGuardRejected, e.From, e.To, e.Reason)
}

func (e *GuardRejectionError) Unwrap() error {
	return ErrGuardRejected
}

// PaymentWarningError is a soft guard outcome. The transition may proceed once the
// caller acknowledges the listed warnings.
type PaymentWarningError struct {
	Warnings []string
}

func NewPaymentWarningError(warnings ...string) *PaymentWarningError {
	return &PaymentWarningError{Warnings: warnings}
}

func (e *PaymentWarningError) Error() string {
	return fmt.Sprintf("%s: acknowledgement required for %v", ErrPaymentWarning, e.Warnings)
}

func (e *PaymentWarningError) Unwrap() error {
	return ErrPaymentWarning
}

// StaleStateError reports a lost optimistic-concurrency race: the stored status is no
// longer the expected pre-state. Callers must re-fetch and re-run the guards.
type StaleStateError struct {
	OrderID  string
	Expected string
	Actual   string
}

func NewStaleStateError(orderID, expected, actual string) *StaleStateError {
	return &StaleStateError{OrderID: orderID, Expected: expected, Actual: actual}
}

func (e *StaleStateError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("%s: order %s is no longer in status %s", ErrStaleState, e.OrderID, e.Expected)
	}
	return fmt.Sprintf("%s: order %s expected status %s, found %s", ErrStaleState, e.OrderID, e.Expected, e.Actual)
}

func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}

// TransportError wraps a store or network failure.
type TransportError struct {
	Op    string
	Cause error
}

func NewTransportError(op string, cause error) *TransportError {
	return &TransportError{Op: op, Cause: cause}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrTransport, e.Op, e.Cause)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Cause}
}

// NotifierFaultError describes a failed notifier tick.
type NotifierFaultError struct {
	Stage string
	Cause error
}

func NewNotifierFaultError(stage string, cause error) *NotifierFaultError {
	return &NotifierFaultError{Stage: stage, Cause: cause}
}

func (e *NotifierFaultError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrNotifierFault, e.Stage, e.Cause)
}

func (e *NotifierFaultError) Unwrap() []error {
	return []error{ErrNotifierFault, e.Cause}
}
