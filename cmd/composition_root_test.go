package cmd

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryRoot(t *testing.T, cfg Config) *CompositionRoot {
	t.Helper()
	root, err := NewCompositionRoot(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })
	return root
}

func TestCompositionRoot_SeedActorsIsIdempotent(t *testing.T) {
	cfg := defaultConfig()
	cfg.Actors = []ActorSeed{{Name: "D2", Role: "delivery"}, {Name: "D1", Role: "delivery"}}
	root := memoryRoot(t, cfg)

	require.NoError(t, root.SeedActors(context.Background()))
	require.NoError(t, root.SeedActors(context.Background()))

	drivers, err := root.CreateListDeliveryActorsQueryHandler().Handle(context.Background(), queries.NewListDeliveryActorsQuery(false))
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, "D1", drivers[0].Name)
}

func TestCompositionRoot_SeedActorsRejectsUnknownRole(t *testing.T) {
	cfg := defaultConfig()
	cfg.Actors = []ActorSeed{{Name: "X", Role: "janitor"}}
	root := memoryRoot(t, cfg)

	require.Error(t, root.SeedActors(context.Background()))
}

func TestCompositionRoot_BuildsHTTPServer(t *testing.T) {
	root := memoryRoot(t, defaultConfig())

	server, err := root.NewHTTPServer(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, server.Echo())
}

func TestTransitionObservers_FanOut(t *testing.T) {
	root := memoryRoot(t, defaultConfig())

	root.observer.TransitionApplied(order.TransitionRecord{Kind: order.OverrideTransition, To: order.Refund, At: time.Now()})
	root.observer.TransitionRejected(order.Received, order.ReadyForPickup, "no-delivery-person")

	assert.InDelta(t, 1, testutil.ToFloat64(root.metrics.Transitions.WithLabelValues("override", "Refund")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(root.metrics.Rejections.WithLabelValues("no-delivery-person")), 0)
}
