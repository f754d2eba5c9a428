package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageRouter_FilterFor(t *testing.T) {
	router := services.NewStageRouter()
	self := kernel.NewUUID()

	t.Run("frontdesk new orders", func(t *testing.T) {
		f, err := router.FilterFor(actor.FrontDesk, kernel.UUID{}, services.StageNewOrders)
		require.NoError(t, err)
		assert.Equal(t, []order.Status{order.Received}, f.Statuses)
		assert.Equal(t, order.Unassigned, f.Assignment)
	})

	t.Run("backoffice received", func(t *testing.T) {
		f, err := router.FilterFor(actor.BackOffice, kernel.UUID{}, services.StageReceived)
		require.NoError(t, err)
		assert.Equal(t, []order.Status{order.ReceivedInWorkshop}, f.Statuses)
		assert.Equal(t, order.AnyAssignment, f.Assignment)
	})

	t.Run("delivery pickups are scoped to self", func(t *testing.T) {
		f, err := router.FilterFor(actor.Delivery, self, services.StagePickups)
		require.NoError(t, err)
		assert.Equal(t, order.AssignedToActor, f.Assignment)
		assert.True(t, f.AssignedTo.IsEqual(self))
		assert.Equal(t, order.WithoutRack, f.Rack)

		_, err = router.FilterFor(actor.Delivery, kernel.UUID{}, services.StagePickups)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("overloaded ready for pickup splits on rack", func(t *testing.T) {
		pickups, err := router.FilterFor(actor.FrontDesk, kernel.UUID{}, services.StagePickups)
		require.NoError(t, err)
		dispatch, err := router.FilterFor(actor.LinenTracker, kernel.UUID{}, services.StageDispatch)
		require.NoError(t, err)

		collecting := orderIn(t, order.ReadyForPickup, &self, "")
		racked := orderIn(t, order.ReadyForPickup, nil, "B2")

		assert.True(t, pickups.Matches(collecting))
		assert.False(t, pickups.Matches(racked))
		assert.False(t, dispatch.Matches(collecting))
		assert.True(t, dispatch.Matches(racked))
	})

	t.Run("admin sees everything", func(t *testing.T) {
		f, err := router.FilterFor(actor.Admin, kernel.UUID{}, services.StageAll)
		require.NoError(t, err)
		assert.Empty(t, f.Statuses)
		assert.Equal(t, order.AnyAssignment, f.Assignment)
		assert.True(t, f.Matches(orderIn(t, order.Cancelled, nil, "")))
	})

	t.Run("stage not available to role", func(t *testing.T) {
		_, err := router.FilterFor(actor.BackOffice, kernel.UUID{}, services.StageSorting)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStageRouter_NextStatus(t *testing.T) {
	router := services.NewStageRouter()

	tests := []struct {
		role    actor.Role
		stage   services.Stage
		outcome string
		want    order.Status
		wantErr error
	}{
		{actor.FrontDesk, services.StageNewOrders, "", order.ReadyForPickup, nil},
		{actor.FrontDesk, services.StageReturns, "", order.OutForDelivery, nil},
		{actor.Delivery, services.StageDeliveries, "", order.Delivered, nil},
		{actor.Operations, services.StageSorting, "", order.Spotting, nil},
		{actor.Operations, services.StageSorting, "return", order.Return, nil},
		{actor.DryCleaner, services.StageIroning, "", order.QualityCheck, nil},
		{actor.DryCleaner, services.StageQualityCheck, "pass", order.Packing, nil},
		{actor.DryCleaner, services.StageQualityCheck, "fail", order.Spotting, nil},
		{actor.DryCleaner, services.StageQualityCheck, "", order.Unknown, errs.ErrValueIsRequired},
		{actor.DryCleaner, services.StageQualityCheck, "maybe", order.Unknown, errs.ErrValueIsInvalid},
		{actor.LinenTracker, services.StagePacking, "", order.ReadyForPickup, nil},
		{actor.Admin, services.StageAll, "", order.Unknown, errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+"/"+string(tt.stage)+"/"+tt.outcome, func(t *testing.T) {
			got, err := router.NextStatus(tt.role, tt.stage, tt.outcome)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStageRouter_NextStatusIsAlwaysAnEdge(t *testing.T) {
	router := services.NewStageRouter()

	for _, role := range actor.Roles() {
		for _, stage := range router.Stages(role) {
			f, err := router.FilterFor(role, kernel.NewUUID(), stage)
			require.NoError(t, err)
			for _, outcome := range []string{"", "return", "pass", "fail"} {
				next, err := router.NextStatus(role, stage, outcome)
				if err != nil {
					continue
				}
				for _, from := range f.Statuses {
					_, ok := order.EdgeBetween(from, next)
					assert.True(t, ok, "%s/%s: %s -> %s", role, stage, from, next)
				}
			}
		}
	}
}
