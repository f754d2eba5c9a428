package notifier_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/notifier"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderA = kernel.MustUUIDFromString("0b7f8d5e-8a4c-4f2a-9a3e-2c1d5e6f7a01")
	orderB = kernel.MustUUIDFromString("0b7f8d5e-8a4c-4f2a-9a3e-2c1d5e6f7a02")
	key    = notifier.Key{Role: actor.FrontDesk, Stage: services.StageNewOrders}
)

type step struct {
	ids []kernel.UUID
	err error
}

// scriptedLister replays steps, repeating the last one when exhausted.
type scriptedLister struct {
	mu    sync.Mutex
	steps []step
	calls int
}

func (l *scriptedLister) Handle(_ context.Context, _ queries.ListStageOrdersQuery) ([]queries.OrderView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.steps[min(l.calls, len(l.steps)-1)]
	l.calls++
	if s.err != nil {
		return nil, s.err
	}
	views := make([]queries.OrderView, 0, len(s.ids))
	for _, id := range s.ids {
		views = append(views, queries.OrderView{
			ID: id, TicketNumber: "T-" + id.String()[34:], Status: order.Received,
			Customer: order.Customer{Name: "Ada", Address: "1 Main St"},
		})
	}
	return views, nil
}

func (l *scriptedLister) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// blockingLister holds every read until release is closed.
type blockingLister struct {
	release chan struct{}
	scriptedLister
}

func (l *blockingLister) Handle(ctx context.Context, q queries.ListStageOrdersQuery) ([]queries.OrderView, error) {
	views, err := l.scriptedLister.Handle(ctx, q)
	<-l.release
	return views, err
}

// logBuffer collects slog output from concurrent ticks.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) Count(substr string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Count(b.buf.String(), substr)
}

type recordingEffect struct {
	mu      sync.Mutex
	batches []notifier.Batch
}

func (e *recordingEffect) Notify(_ context.Context, b notifier.Batch) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.batches = append(e.batches, b)
	return nil
}

func orderIDs(entries []notifier.Entry) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.OrderID)
	}
	return out
}

func TestPoll_EmitsOnlyIDsMissingFromPreviousPoll(t *testing.T) {
	lister := &scriptedLister{steps: []step{
		{ids: nil},
		{ids: []kernel.UUID{orderA}},
		{ids: []kernel.UUID{orderA}},
		{ids: []kernel.UUID{orderA, orderB}},
	}}
	effect := &recordingEffect{}
	n := notifier.New(key, lister, notifier.Options{Effects: []notifier.Effect{effect}})

	var emitted [][]kernel.UUID
	for i := 0; i < 4; i++ {
		entries, err := n.Poll(context.Background())
		require.NoError(t, err)
		emitted = append(emitted, orderIDs(entries))
	}

	assert.Empty(t, emitted[0])
	assert.Equal(t, []kernel.UUID{orderA}, emitted[1])
	assert.Empty(t, emitted[2])
	assert.Equal(t, []kernel.UUID{orderB}, emitted[3])

	require.Len(t, effect.batches, 2)
	assert.Len(t, effect.batches[0].Entries, 1)
	assert.Equal(t, key, effect.batches[1].Key)

	inbox := n.Inbox().List()
	require.Len(t, inbox, 2)
	assert.True(t, inbox[0].OrderID.IsEqual(orderB))
	assert.Equal(t, "1 Main St", inbox[0].Address)
	assert.Equal(t, 2, n.Inbox().Unread())
}

func TestPoll_FirstLoadIsSuppressed(t *testing.T) {
	lister := &scriptedLister{steps: []step{{ids: []kernel.UUID{orderA, orderB}}}}
	n := notifier.New(key, lister, notifier.Options{})

	entries, err := n.Poll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, n.Inbox().List())
}

func TestPoll_FaultSkipsTickAndKeepsPreviousSet(t *testing.T) {
	lister := &scriptedLister{steps: []step{
		{ids: []kernel.UUID{orderA}},
		{err: errs.NewTransportError("list orders", errors.New("connection refused"))},
		{ids: []kernel.UUID{orderA, orderB}},
	}}
	n := notifier.New(key, lister, notifier.Options{})

	_, err := n.Poll(context.Background())
	require.NoError(t, err)

	_, err = n.Poll(context.Background())
	require.ErrorIs(t, err, errs.ErrNotifierFault)
	require.ErrorIs(t, err, errs.ErrTransport)

	entries, err := n.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{orderB}, orderIDs(entries))
}

func TestPoll_FailingEffectDoesNotStopOthers(t *testing.T) {
	lister := &scriptedLister{steps: []step{{ids: nil}, {ids: []kernel.UUID{orderA}}}}
	failing := notifier.EffectFunc(func(context.Context, notifier.Batch) error {
		return errors.New("broker down")
	})
	effect := &recordingEffect{}
	n := notifier.New(key, lister, notifier.Options{Effects: []notifier.Effect{failing, effect}})

	_, err := n.Poll(context.Background())
	require.NoError(t, err)
	entries, err := n.Poll(context.Background())

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Len(t, effect.batches, 1)
}

func TestInbox(t *testing.T) {
	lister := &scriptedLister{steps: []step{{ids: nil}, {ids: []kernel.UUID{orderA, orderB}}}}
	n := notifier.New(key, lister, notifier.Options{})
	_, err := n.Poll(context.Background())
	require.NoError(t, err)
	entries, err := n.Poll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	inbox := n.Inbox()
	require.NoError(t, inbox.MarkRead(entries[0].ID))
	assert.Equal(t, 1, inbox.Unread())
	require.ErrorIs(t, inbox.MarkRead(kernel.NewUUID()), errs.ErrObjectNotFound)

	inbox.MarkAllRead()
	assert.Zero(t, inbox.Unread())
	assert.Len(t, inbox.List(), 2)

	inbox.Clear()
	assert.Empty(t, inbox.List())
}

func TestNotifier_StartAndVisibilityTickImmediately(t *testing.T) {
	lister := &scriptedLister{steps: []step{{ids: nil}}}
	n := notifier.New(key, lister, notifier.Options{Interval: time.Hour})

	require.NoError(t, n.Start())
	defer n.Stop()
	require.Eventually(t, func() bool { return lister.Calls() == 1 }, time.Second, 5*time.Millisecond)

	n.SetVisible(false)
	n.Trigger()
	assert.Equal(t, 1, lister.Calls())

	// The wake-up tick is skipped while the first one is still finishing, so toggle until it lands.
	require.Eventually(t, func() bool {
		n.SetVisible(false)
		n.SetVisible(true)
		return lister.Calls() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_TickWhileRunningIsSkipped(t *testing.T) {
	lister := &blockingLister{
		release:        make(chan struct{}),
		scriptedLister: scriptedLister{steps: []step{{ids: nil}}},
	}
	logs := &logBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := notifier.New(key, lister, notifier.Options{Interval: time.Hour, Logger: logger})

	require.NoError(t, n.Start())
	defer n.Stop()
	require.Eventually(t, func() bool { return lister.Calls() == 1 }, time.Second, 5*time.Millisecond)

	for i := 0; i < 5; i++ {
		n.Trigger()
	}
	require.Eventually(t, func() bool { return logs.Count("msg=skip") == 5 }, time.Second, 5*time.Millisecond)

	close(lister.release)
	assert.Never(t, func() bool { return lister.Calls() > 1 }, 100*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, 1, lister.Calls())
}

func TestManager_ResubscribeSuppressesFirstLoad(t *testing.T) {
	lister := &scriptedLister{steps: []step{
		{ids: nil},
		{ids: []kernel.UUID{orderA}},
		{ids: []kernel.UUID{orderA, orderB}},
	}}
	m := notifier.NewManager(lister, services.NewStageRouter(), notifier.Options{Interval: time.Hour})
	defer m.StopAll()

	first, err := m.Subscribe(key)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return lister.Calls() == 1 }, time.Second, 5*time.Millisecond)
	first.Close()

	// orderA arrives while nobody is watching.
	second, err := m.Subscribe(key)
	require.NoError(t, err)
	defer second.Close()
	require.Eventually(t, func() bool { return lister.Calls() == 2 }, time.Second, 5*time.Millisecond)

	assert.Never(t, func() bool {
		select {
		case <-second.C:
			return true
		default:
			return false
		}
	}, 100*time.Millisecond, 10*time.Millisecond)
	assert.Empty(t, second.Inbox().List())

	var got notifier.Entry
	require.Eventually(t, func() bool {
		m.TransitionApplied(order.TransitionRecord{})
		select {
		case got = <-second.C:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
	assert.True(t, got.OrderID.IsEqual(orderB))
	assert.Len(t, second.Inbox().List(), 1)
}

func TestManager_SubscriptionStreamsNewEntries(t *testing.T) {
	lister := &scriptedLister{steps: []step{{ids: nil}, {ids: []kernel.UUID{orderA}}}}
	m := notifier.NewManager(lister, services.NewStageRouter(), notifier.Options{Interval: time.Hour})
	defer m.StopAll()

	sub, err := m.Subscribe(key)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return lister.Calls() == 1 }, time.Second, 5*time.Millisecond)

	var got notifier.Entry
	require.Eventually(t, func() bool {
		m.TransitionApplied(order.TransitionRecord{})
		select {
		case got = <-sub.C:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
	assert.True(t, got.OrderID.IsEqual(orderA))

	inbox, err := m.Inbox(key)
	require.NoError(t, err)
	assert.Same(t, sub.Inbox(), inbox)
	assert.Len(t, inbox.List(), 1)

	sub.Close()
	_, open := <-sub.C
	assert.False(t, open)
}

func TestManager_RejectsUnknownStage(t *testing.T) {
	m := notifier.NewManager(&scriptedLister{}, services.NewStageRouter(), notifier.Options{})

	_, err := m.Subscribe(notifier.Key{Role: actor.BackOffice, Stage: services.StageDispatch})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = m.Subscribe(notifier.Key{Role: actor.Delivery, Stage: services.StagePickups})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
