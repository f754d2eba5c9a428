package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// StageCount is one dashboard tile.
type StageCount struct {
	Stage services.Stage
	Count int
}

type GetStageCountsQueryHandler struct {
	orders OrderReader
	router services.StageRouter
	stats  services.StatsAggregator
}

func NewGetStageCountsQueryHandler(orders OrderReader, router services.StageRouter) GetStageCountsQueryHandler {
	return GetStageCountsQueryHandler{
		orders: orders,
		router: router,
		stats:  services.NewStatsAggregator(router),
	}
}

// Handle reads the full order set once and counts it with the same filters the stage
// listings use. Tiles come back in dashboard order.
func (h GetStageCountsQueryHandler) Handle(ctx context.Context, query GetStageCountsQuery) ([]StageCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, order.Filter{})
	if err != nil {
		return nil, err
	}

	counts, err := h.stats.CountsByStage(query.Role(), query.ActorID(), orders)
	if err != nil {
		return nil, err
	}

	stages := h.router.Stages(query.Role())
	out := make([]StageCount, 0, len(stages))
	for _, stage := range stages {
		out = append(out, StageCount{Stage: stage, Count: counts[stage]})
	}
	return out, nil
}
