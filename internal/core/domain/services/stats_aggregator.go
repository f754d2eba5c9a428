package services

import (
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// StatsAggregator derives dashboard tile counts from an order set.
type StatsAggregator struct {
	router StageRouter
}

func NewStatsAggregator(router StageRouter) StatsAggregator {
	return StatsAggregator{router: router}
}

// CountsByStage counts orders per stage of role using the router's filters, so that a
// tile count always equals the length of the corresponding stage listing.
func (a StatsAggregator) CountsByStage(role actor.Role, self kernel.UUID, orders []*order.Order) (map[Stage]int, error) {
	stages := a.router.Stages(role)
	counts := make(map[Stage]int, len(stages))

	for _, stage := range stages {
		f, err := a.router.FilterFor(role, self, stage)
		if err != nil {
			return nil, err
		}
		counts[stage] = 0
		for _, o := range orders {
			if f.Matches(o) {
				counts[stage]++
			}
		}
	}

	return counts, nil
}
