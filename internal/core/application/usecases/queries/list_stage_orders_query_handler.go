package queries

import (
	"context"

	"laundry/internal/core/domain/services"
)

// ListStageOrdersQueryHandler resolves the stage filter through the router and reads the
// matching orders in creation order.
type ListStageOrdersQueryHandler struct {
	orders OrderReader
	router services.StageRouter
}

func NewListStageOrdersQueryHandler(orders OrderReader, router services.StageRouter) ListStageOrdersQueryHandler {
	return ListStageOrdersQueryHandler{orders: orders, router: router}
}

func (h ListStageOrdersQueryHandler) Handle(ctx context.Context, query ListStageOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, err := h.router.FilterFor(query.Role(), query.ActorID(), query.Stage())
	if err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
