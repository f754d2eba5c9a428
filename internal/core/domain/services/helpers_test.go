package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

// orderIn builds a three-item order in status with optional assignment and rack.
func orderIn(t *testing.T, status order.Status, assignee *kernel.UUID, rack string) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, 3)
	for _, d := range []string{"Shirt", "Trousers", "Jacket"} {
		item, err := order.NewItem(d, 1, 500, "", nil)
		require.NoError(t, err)
		items = append(items, item)
	}

	s := order.Snapshot{
		ID:           kernel.NewUUID(),
		TicketNumber: "T-001",
		Status:       status,
		Items:        items,
		Customer:     order.Customer{Name: "Ada"},
		RackNumber:   rack,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if assignee != nil {
		s.Assignment = &order.Assignment{ActorID: *assignee, ActorName: "D1", At: now}
	}

	o, err := order.RestoreOrder(s)
	require.NoError(t, err)
	return o
}
