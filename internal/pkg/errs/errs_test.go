package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "T-001")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "T-001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: T-001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "T-001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: T-001 (cause: connection reset)",
			err.Error())
	})

	t.Run("non-string id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("actorId", 42)
		assert.Equal(t, "object not found: %!s(int=42)", err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("rackNumber")
		assert.Equal(t, "value is invalid: rackNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())

		err = errs.NewValueIsInvalidErrorWithCause("rackNumber", errors.New("want letter+digits"))
		assert.Equal(t, "value is invalid: rackNumber (cause: want letter+digits)", err.Error())
	})

	t.Run("out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 999)
		assert.Equal(t, "value is invalid: %!s(int=0) is quantity, min value is 1, max value is 999", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())

		err = errs.NewValueIsOutOfRangeErrorWithCause("note", "a\nb", 0, 10, errors.New("too long"))
		assert.Contains(t, err.Error(), "a b is note")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "(cause: too long)")
	})

	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("ticketNumber")
		assert.Equal(t, "value is required: ticketNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

		err = errs.NewValueIsRequiredErrorWithCause("ticketNumber", errors.New("empty"))
		assert.Equal(t, "value is required: ticketNumber (cause: empty)", err.Error())
	})
}

func TestWorkflowErrors(t *testing.T) {
	t.Run("guard rejection carries reason", func(t *testing.T) {
		err := errs.NewGuardRejectionError("unverified-items", "Ready for Pickup", "Received in Workshop")

		assert.Equal(t, "transition rejected: Ready for Pickup -> Received in Workshop: unverified-items", err.Error())
		require.ErrorIs(t, err, errs.ErrGuardRejected)

		var target *errs.GuardRejectionError
		require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &target)
		assert.Equal(t, "unverified-items", target.Reason)
	})

	t.Run("payment warning lists warnings", func(t *testing.T) {
		err := errs.NewPaymentWarningError("payment-not-collected")
		require.ErrorIs(t, err, errs.ErrPaymentWarning)
		assert.Equal(t, []string{"payment-not-collected"}, err.Warnings)
	})

	t.Run("stale state", func(t *testing.T) {
		err := errs.NewStaleStateError("abc", "Sorting", "Spotting")
		assert.Equal(t, "stale state: order abc expected status Sorting, found Spotting", err.Error())
		require.ErrorIs(t, err, errs.ErrStaleState)

		err = errs.NewStaleStateError("abc", "Sorting", "")
		assert.Equal(t, "stale state: order abc is no longer in status Sorting", err.Error())
	})

	t.Run("transport and notifier keep their cause", func(t *testing.T) {
		cause := errors.New("dial tcp: refused")

		transportErr := errs.NewTransportError("fetch stage", cause)
		require.ErrorIs(t, transportErr, errs.ErrTransport)
		require.ErrorIs(t, transportErr, cause)

		faultErr := errs.NewNotifierFaultError("sorting", transportErr)
		require.ErrorIs(t, faultErr, errs.ErrNotifierFault)
		require.ErrorIs(t, faultErr, errs.ErrTransport)
		require.ErrorIs(t, faultErr, cause)
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "stale state", errs.ErrStaleState.Error())
}
