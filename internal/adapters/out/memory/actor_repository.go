package memory

import (
	"context"
	"fmt"
	"sort"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

type ActorRepository struct {
	store *Store
	tx    *journal
}

func (r *ActorRepository) Add(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "add actor"); err != nil {
		return err
	}

	if _, ok := s.actors[aggregate.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("actor", fmt.Errorf("actor %s already exists", aggregate.ID()))
	}
	s.actors[aggregate.ID()] = actorRow{
		id:     aggregate.ID(),
		name:   aggregate.Name(),
		role:   aggregate.Role(),
		active: aggregate.IsActive(),
	}
	id := aggregate.ID()
	r.tx.record(func() { delete(s.actors, id) })
	return nil
}

func (r *ActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("actor", id.String(), err)
	}

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "get actor"); err != nil {
		return nil, err
	}

	row, ok := s.actors[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("actor", id.String())
	}
	return actor.RestoreActor(row.id, row.name, row.role, row.active)
}

func (r *ActorRepository) ListByRole(ctx context.Context, role actor.Role, activeOnly bool) ([]*actor.Actor, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "list actors"); err != nil {
		return nil, err
	}

	out := make([]*actor.Actor, 0)
	for _, row := range s.actors {
		if row.role != role || (activeOnly && !row.active) {
			continue
		}
		a, err := actor.RestoreActor(row.id, row.name, row.role, row.active)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}
