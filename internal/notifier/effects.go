package notifier

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
)

// Key identifies a watched listing.
type Key struct {
	Role    actor.Role
	ActorID kernel.UUID
	Stage   services.Stage
}

// Batch is the set of arrivals found by one poll.
type Batch struct {
	Key     Key
	Entries []Entry
	At      time.Time
}

// Effect runs once per non-empty batch. A failing effect is logged and does not stop the
// others.
type Effect interface {
	Notify(ctx context.Context, batch Batch) error
}

// EffectFunc adapts a function to Effect.
type EffectFunc func(ctx context.Context, batch Batch) error

func (f EffectFunc) Notify(ctx context.Context, batch Batch) error {
	return f(ctx, batch)
}
