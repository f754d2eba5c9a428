package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func mustItem(t *testing.T, desc string, qty int, price int64) order.Item {
	t.Helper()
	item, err := order.NewItem(desc, qty, price, "", map[string]string{"starch": "light"})
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"T-001",
		order.Customer{Name: "Ada", Phone: "555-0100", Address: "1 Main St"},
		[]order.Item{mustItem(t, "Shirt", 2, 350), mustItem(t, "Suit", 1, 1500), mustItem(t, "Tie", 1, 200)},
		"",
		testNow,
	)
	require.NoError(t, err)
	return o
}

func stamp(role actor.Role) order.AuditStamp {
	return order.AuditStamp{At: testNow.Add(time.Hour), ByID: kernel.NewUUID(), ByName: "op", Role: role}
}

func TestNewOrder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, 3, o.ItemCount())
		assert.Equal(t, int64(2*350+1500+200), o.TotalAmount())
		assert.False(t, o.IsAssigned())
		assert.True(t, o.RackNumber().IsZero())
		assert.Equal(t, order.AnyPhase, o.Phase())
	})

	t.Run("invalid fields are joined", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, " ", order.Customer{}, nil, "", testNow)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, order.ErrTicketIsRequired)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	_, err := order.NewItem("", 0, -1, "", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	item := mustItem(t, "Coat", 1, 900)
	opts := item.Options()
	opts["starch"] = "heavy"
	assert.Equal(t, "light", item.Options()["starch"], "items are immutable")
}

func TestRestoreOrder_RejectsBrokenInvariants(t *testing.T) {
	s := newTestOrder(t).Snapshot()

	t.Run("bad rack", func(t *testing.T) {
		broken := s
		broken.RackNumber = "2B"
		_, err := order.RestoreOrder(broken)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("partial assignment", func(t *testing.T) {
		broken := s
		broken.Assignment = &order.Assignment{ActorID: kernel.NewUUID()}
		_, err := order.RestoreOrder(broken)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status", func(t *testing.T) {
		broken := s
		broken.Status = order.Unknown
		_, err := order.RestoreOrder(broken)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Apply(t *testing.T) {
	t.Run("assignment and stamp", func(t *testing.T) {
		o := newTestOrder(t)
		by := stamp(actor.FrontDesk)
		assignment, err := order.NewAssignment(kernel.NewUUID(), "D1", by.At)
		require.NoError(t, err)

		rec, err := o.Apply(order.Change{
			From: order.Received, To: order.ReadyForPickup, Kind: order.GuardedTransition,
			Stamp: "pickupScheduled", By: by, Assignment: &assignment,
		})

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForPickup, o.Status())
		assert.Equal(t, "D1", o.Assignment().ActorName)
		assert.Equal(t, order.CollectionPhase, o.Phase())
		got, ok := o.Stamp("pickupScheduled")
		require.True(t, ok)
		assert.Equal(t, by, got)
		assert.Equal(t, by.At, o.UpdatedAt())
		assert.Equal(t, order.Received, rec.From)
		assert.Equal(t, order.ReadyForPickup, rec.To)
		assert.True(t, rec.OrderID.IsEqual(o.ID()))
	})

	t.Run("stale pre-state", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.Apply(order.Change{
			From: order.Sorting, To: order.Spotting, Kind: order.GuardedTransition, By: stamp(actor.Operations),
		})

		require.ErrorIs(t, err, errs.ErrStaleState)
		assert.Equal(t, order.Received, o.Status())
	})

	t.Run("rework, rack and payment", func(t *testing.T) {
		s := newTestOrder(t).Snapshot()
		s.Status = order.QualityCheck
		o, err := order.RestoreOrder(s)
		require.NoError(t, err)

		_, err = o.Apply(order.Change{
			From: order.QualityCheck, To: order.Spotting, Kind: order.GuardedTransition,
			By: stamp(actor.DryCleaner), ReworkReason: order.ReworkReasonQCFailed, Stamp: "rework",
		})
		require.NoError(t, err)
		assert.Equal(t, order.ReworkReasonQCFailed, o.ReworkReason())
		assert.Equal(t, 1, o.ReworkCount())

		s = o.Snapshot()
		s.Status = order.Packing
		o, err = order.RestoreOrder(s)
		require.NoError(t, err)
		rack, err := order.NewRackNumber("D3")
		require.NoError(t, err)
		_, err = o.Apply(order.Change{
			From: order.Packing, To: order.ReadyForPickup, Kind: order.GuardedTransition,
			By: stamp(actor.LinenTracker), Rack: rack, Stamp: "racked",
		})
		require.NoError(t, err)
		assert.Equal(t, order.DispatchPhase, o.Phase())

		s = o.Snapshot()
		s.Status = order.OutForDelivery
		o, err = order.RestoreOrder(s)
		require.NoError(t, err)
		_, err = o.Apply(order.Change{
			From: order.OutForDelivery, To: order.Delivered, Kind: order.GuardedTransition,
			By: stamp(actor.Delivery), MarkPaid: true, Stamp: "delivered",
		})
		require.NoError(t, err)
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		_, ok := o.Stamp(order.StampPaymentCollected)
		assert.True(t, ok)
	})

	t.Run("invalid change", func(t *testing.T) {
		o := newTestOrder(t)
		a, err := order.NewAssignment(kernel.NewUUID(), "D1", testNow)
		require.NoError(t, err)

		_, err = o.Apply(order.Change{From: order.Received, To: order.Unknown, Assignment: &a, ClearAssignment: true})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_CloneIsIndependent(t *testing.T) {
	o := newTestOrder(t)
	c := o.Clone()

	_, err := c.Apply(order.Change{
		From: order.Received, To: order.Cancelled, Kind: order.OverrideTransition, By: stamp(actor.Admin),
		Stamp: order.StampOverride,
	})
	require.NoError(t, err)

	assert.Equal(t, order.Received, o.Status())
	_, ok := o.Stamp(order.StampOverride)
	assert.False(t, ok)
}

func TestOrder_UpdateFields(t *testing.T) {
	o := newTestOrder(t)
	notes := "fragile buttons"

	require.NoError(t, o.UpdateFields(order.FieldsPatch{Notes: &notes}, testNow.Add(time.Minute)))
	assert.Equal(t, notes, o.Notes())
	assert.Equal(t, "Ada", o.Customer().Name)

	err := o.UpdateFields(order.FieldsPatch{Customer: &order.Customer{}}, testNow)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTagNumberFor(t *testing.T) {
	assert.Equal(t, "GT-T-001", order.TagNumberFor("T-001"))
}
