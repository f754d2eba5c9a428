package actor_test

import (
	"testing"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		a, err := actor.NewActor(id, "  Dana  ", actor.Delivery)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "Dana", a.Name())
		assert.Equal(t, actor.Delivery, a.Role())
		assert.True(t, a.IsActive())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := actor.NewActor(kernel.UUID{}, " ", actor.UnknownRole)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, actor.ErrNameIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var a actor.Actor
		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)

		var nilActor *actor.Actor
		require.ErrorIs(t, nilActor.Validate(), actor.ErrActorIsNotConstructed)
	})
}

func TestActor_CanDeliver(t *testing.T) {
	driver, err := actor.NewActor(kernel.NewUUID(), "D1", actor.Delivery)
	require.NoError(t, err)
	require.NoError(t, driver.CanDeliver())

	clerk, err := actor.NewActor(kernel.NewUUID(), "Front", actor.FrontDesk)
	require.NoError(t, err)
	require.ErrorIs(t, clerk.CanDeliver(), errs.ErrValueIsInvalid)

	driver.Deactivate()
	require.ErrorIs(t, driver.CanDeliver(), actor.ErrActorIsInactive)
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want actor.Role
		ok   bool
	}{
		{in: "frontdesk", want: actor.FrontDesk, ok: true},
		{in: "linentracker", want: actor.LinenTracker, ok: true},
		{in: "manager", want: actor.Admin, ok: true},
		{in: "admin", want: actor.Admin, ok: true},
		{in: "unknown", ok: false},
		{in: "FrontDesk", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := actor.ParseRole(tt.in)
			if !tt.ok {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestRole_RoundTripsThroughText(t *testing.T) {
	for _, role := range actor.Roles() {
		raw, err := role.MarshalText()
		require.NoError(t, err)

		var parsed actor.Role
		require.NoError(t, parsed.UnmarshalText(raw))
		assert.Equal(t, role, parsed)
	}
}
