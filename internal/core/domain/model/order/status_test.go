package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ParseAndString(t *testing.T) {
	for _, s := range order.Statuses() {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("Washing")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, "Unknown", order.Status(99).String())
	require.Error(t, order.Unknown.Validate())
}

func TestStatus_Text(t *testing.T) {
	raw, err := order.QualityCheck.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Quality Check", string(raw))

	var s order.Status
	require.NoError(t, s.UnmarshalText([]byte("Out for Delivery")))
	assert.Equal(t, order.OutForDelivery, s)

	_, err = order.Unknown.MarshalText()
	require.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{order.Delivered: true, order.Refund: true, order.Cancelled: true}

	for _, s := range order.Statuses() {
		assert.Equal(t, terminal[s], order.IsTerminal(s), s.String())
		if terminal[s] {
			assert.Empty(t, order.EdgesFrom(s), "terminal status %s must be absorbing", s)
		}
	}
}

func TestEdgesFrom(t *testing.T) {
	tests := []struct {
		from order.Status
		want []order.Status
	}{
		{order.Received, []order.Status{order.ReadyForPickup, order.Cancelled}},
		{order.ReadyForPickup, []order.Status{order.ReceivedInWorkshop, order.OutForDelivery}},
		{order.Sorting, []order.Status{order.Spotting, order.Return}},
		{order.QualityCheck, []order.Status{order.Packing, order.Spotting}},
		{order.Packing, []order.Status{order.ReadyForPickup}},
		{order.Return, []order.Status{order.OutForDelivery}},
		{order.OutForDelivery, []order.Status{order.Delivered}},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, order.EdgesFrom(tt.from))
		})
	}
}

func TestEdges_Consistency(t *testing.T) {
	seen := make(map[[2]order.Status]bool)
	for _, e := range order.Edges() {
		key := [2]order.Status{e.From, e.To}
		assert.False(t, seen[key], "duplicate edge %s -> %s", e.From, e.To)
		seen[key] = true

		assert.False(t, e.From.IsTerminal(), "edge leaves terminal %s", e.From)
		assert.NotEqual(t, order.Refund, e.To, "refund is override-only")
		assert.NotEmpty(t, e.Stamp)
		assert.NotEmpty(t, e.Roles)
		assert.True(t, e.Permits(actor.Admin))

		if e.HasGuard(order.QCOutcomeBranch) {
			assert.NotEqual(t, order.NoOutcome, e.Outcome)
		}
		if e.HasGuard(order.StagePhase) {
			assert.NotEqual(t, order.AnyPhase, e.Phase)
		}
	}
}

func TestEdge_Permits(t *testing.T) {
	e, ok := order.EdgeBetween(order.ReadyForPickup, order.ReceivedInWorkshop)
	require.True(t, ok)

	assert.True(t, e.Permits(actor.Delivery))
	assert.True(t, e.Permits(actor.Admin))
	assert.False(t, e.Permits(actor.FrontDesk))
	assert.Equal(t, order.CollectionPhase, e.Phase)

	_, ok = order.EdgeBetween(order.Received, order.Delivered)
	assert.False(t, ok)
}

func TestRackNumber(t *testing.T) {
	for _, ok := range []string{"B2", "D3", "Z99", "A0"} {
		r, err := order.NewRackNumber(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, ok, r.String())
	}
	for _, bad := range []string{"B", "2B", "b2", "B100", "", "BB2", " B2"} {
		_, err := order.NewRackNumber(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}
