package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// OrderDetails is an order together with its history and the destinations the viewer's
// role may attempt from the current status.
type OrderDetails struct {
	Order   OrderView
	History []order.TransitionRecord
	Next    []order.Status
}

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}

	history, err := h.orders.ListTransitions(ctx, o.ID())
	if err != nil {
		return OrderDetails{}, err
	}

	next := make([]order.Status, 0, 2)
	for _, to := range order.EdgesFrom(o.Status()) {
		edge, _ := order.EdgeBetween(o.Status(), to)
		if !edge.Permits(query.Role()) {
			continue
		}
		if edge.Phase != order.AnyPhase && edge.Phase != o.Phase() {
			continue
		}
		next = append(next, to)
	}

	return OrderDetails{Order: NewOrderView(o), History: history, Next: next}, nil
}
