package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const DefaultInterval = 10 * time.Second

// StageLister reads a stage listing. queries.ListStageOrdersQueryHandler satisfies it.
type StageLister interface {
	Handle(ctx context.Context, query queries.ListStageOrdersQuery) ([]queries.OrderView, error)
}

// Options tune a Notifier. Zero values fall back to defaults.
type Options struct {
	Interval time.Duration
	Clock    kernel.Clock
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Effects  []Effect
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Clock == nil {
		o.Clock = kernel.SystemClock()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Notifier detects orders entering one stage listing.
type Notifier struct {
	key    Key
	lister StageLister
	opts   Options
	inbox  *Inbox
	logger *slog.Logger
	job    cron.Job

	mu       sync.Mutex
	cron     *cron.Cron
	previous map[kernel.UUID]struct{}
	primed   bool
	epoch    int
	visible  bool
	started  bool
	subs     map[int]chan Entry
	nextSub  int
}

func New(key Key, lister StageLister, opts Options) *Notifier {
	opts = opts.withDefaults()
	logger := opts.Logger.With(
		"component", "notifier",
		"role", key.Role.String(),
		"stage", string(key.Stage),
	)

	n := &Notifier{
		key:      key,
		lister:   lister,
		opts:     opts,
		inbox:    NewInbox(),
		logger:   logger,
		previous: make(map[kernel.UUID]struct{}),
		visible:  true,
		subs:     make(map[int]chan Entry),
	}
	// One wrapped job serves both the schedule and the immediate ticks so that they
	// share the overlap guard.
	n.job = cron.NewChain(cron.SkipIfStillRunning(cronLogger{logger: logger})).Then(cron.FuncJob(n.tick))
	return n
}

func (n *Notifier) Key() Key { return n.key }

func (n *Notifier) Inbox() *Inbox { return n.inbox }

// Start schedules polling and runs the first tick right away. Every start forgets the
// previous id set, so the first load after a restart is suppressed like the very first one.
func (n *Notifier) Start() error {
	n.mu.Lock()
	if n.started {
		n.mu.Unlock()
		return nil
	}
	n.epoch++
	n.previous = make(map[kernel.UUID]struct{})
	n.primed = false

	c := cron.New(cron.WithLogger(cronLogger{logger: n.logger}))
	if _, err := c.AddJob(fmt.Sprintf("@every %s", n.opts.Interval), n.job); err != nil {
		n.mu.Unlock()
		return err
	}
	n.cron = c
	n.started = true
	n.mu.Unlock()

	c.Start()
	go n.job.Run()

	n.logger.Info("Notifier started", "interval", n.opts.Interval.String())
	return nil
}

// Stop halts polling and waits for a running tick to finish.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if !n.started {
		n.mu.Unlock()
		return
	}
	c := n.cron
	n.started = false
	n.cron = nil
	n.mu.Unlock()

	<-c.Stop().Done()
	n.logger.Info("Notifier stopped")
}

// SetVisible pauses polling while false. Becoming visible polls immediately.
func (n *Notifier) SetVisible(visible bool) {
	n.mu.Lock()
	wake := visible && !n.visible && n.started
	n.visible = visible
	n.mu.Unlock()

	if wake {
		go n.job.Run()
	}
}

// Trigger polls now if the notifier is running and visible.
func (n *Notifier) Trigger() {
	n.mu.Lock()
	run := n.started && n.visible
	n.mu.Unlock()

	if run {
		go n.job.Run()
	}
}

// Subscribe returns a channel receiving every new entry. Slow readers miss entries
// rather than block the poll; the inbox still has them.
func (n *Notifier) Subscribe(buffer int) (<-chan Entry, func()) {
	ch := make(chan Entry, buffer)

	n.mu.Lock()
	id := n.nextSub
	n.nextSub++
	n.subs[id] = ch
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			close(ch)
			n.mu.Unlock()
		})
	}
}

func (n *Notifier) tick() {
	n.mu.Lock()
	visible := n.visible
	n.mu.Unlock()

	if !visible {
		n.countTick("paused")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.opts.Interval)
	defer cancel()

	// Faults are logged and counted inside Poll.
	_, _ = n.Poll(ctx)
}

// Poll reads the listing once and returns the entries for orders that were not present
// in the previous successful poll. The first successful poll returns nothing. A failed
// read returns a NotifierFaultError and leaves the previous id set untouched.
func (n *Notifier) Poll(ctx context.Context) ([]Entry, error) {
	n.mu.Lock()
	epoch := n.epoch
	n.mu.Unlock()

	query, err := queries.NewListStageOrdersQuery(n.key.Role, n.key.ActorID, n.key.Stage)
	if err != nil {
		return nil, n.fault(ctx, err)
	}

	views, err := n.lister.Handle(ctx, query)
	if err != nil {
		return nil, n.fault(ctx, err)
	}

	current := make(map[kernel.UUID]struct{}, len(views))
	for _, v := range views {
		current[v.ID] = struct{}{}
	}

	n.mu.Lock()
	// A restart happened while this tick was reading; its result belongs to the old run.
	if n.epoch != epoch {
		n.mu.Unlock()
		n.countTick("discarded")
		return nil, nil
	}
	if !n.primed {
		n.previous = current
		n.primed = true
		n.mu.Unlock()
		n.countTick("primed")
		return nil, nil
	}

	now := n.opts.Clock.Now()
	fresh := make([]Entry, 0)
	for _, v := range views {
		if _, seen := n.previous[v.ID]; seen {
			continue
		}
		fresh = append(fresh, Entry{
			ID:           kernel.NewUUID(),
			OrderID:      v.ID,
			TicketNumber: v.TicketNumber,
			CustomerName: v.Customer.Name,
			Status:       v.Status,
			Address:      v.Customer.Address,
			CreatedAt:    now,
		})
	}
	n.previous = current
	n.publishLocked(fresh)
	n.mu.Unlock()

	n.countTick("ok")
	if len(fresh) == 0 {
		return fresh, nil
	}

	n.inbox.add(fresh)
	n.runEffects(ctx, Batch{Key: n.key, Entries: fresh, At: now})

	if n.opts.Metrics != nil {
		n.opts.Metrics.NotifierArrivals.WithLabelValues(string(n.key.Stage)).Add(float64(len(fresh)))
	}
	n.logger.InfoContext(ctx, "New orders in stage", "count", len(fresh))
	return fresh, nil
}

// publishLocked must be called with n.mu held so that no channel is closed mid-send.
func (n *Notifier) publishLocked(entries []Entry) {
	for _, ch := range n.subs {
		for _, e := range entries {
			select {
			case ch <- e:
			default:
			}
		}
	}
}

func (n *Notifier) runEffects(ctx context.Context, batch Batch) {
	for _, effect := range n.opts.Effects {
		if err := effect.Notify(ctx, batch); err != nil {
			fault := errs.NewNotifierFaultError(string(n.key.Stage), err)
			n.logger.ErrorContext(ctx, "Notification effect failed", "error", fault)
		}
	}
}

func (n *Notifier) fault(ctx context.Context, cause error) error {
	fault := errs.NewNotifierFaultError(string(n.key.Stage), cause)
	n.countTick("fault")
	n.logger.ErrorContext(ctx, "Notifier tick skipped", "error", fault)
	return fault
}

func (n *Notifier) countTick(result string) {
	if n.opts.Metrics != nil {
		n.opts.Metrics.NotifierTicks.WithLabelValues(string(n.key.Stage), result).Inc()
	}
}
