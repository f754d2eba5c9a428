package notifier

import (
	"log/slog"
	"sync"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

const subscriptionBuffer = 32

// Manager keeps one Notifier per key. Notifiers run while at least one subscription is
// open and restart primed afresh, so orders that arrived while nobody watched are not
// reported. Inboxes outlive the subscriptions.
//
// A key is (role, actor, stage), which is what a dashboard session watches. Two
// viewers of the same key share its inbox: the inbox HTTP endpoints address it by key.
type Manager struct {
	lister StageLister
	router services.StageRouter
	opts   Options
	logger *slog.Logger

	mu      sync.Mutex
	entries map[Key]*managed
}

type managed struct {
	notifier *Notifier
	visible  map[*Subscription]bool
}

func NewManager(lister StageLister, router services.StageRouter, opts Options) *Manager {
	opts = opts.withDefaults()
	return &Manager{
		lister:  lister,
		router:  router,
		opts:    opts,
		logger:  opts.Logger.With("component", "notifier_manager"),
		entries: make(map[Key]*managed),
	}
}

// Subscription is one viewer of a stage.
type Subscription struct {
	C <-chan Entry

	key     Key
	manager *Manager
	cancel  func()
	once    sync.Once
}

// Subscribe starts watching key and returns a stream of new entries. Closing the
// subscription stops the notifier once nobody is watching.
func (m *Manager) Subscribe(key Key) (*Subscription, error) {
	if _, err := m.router.FilterFor(key.Role, key.ActorID, key.Stage); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.entryLocked(key)
	ch, cancel := entry.notifier.Subscribe(subscriptionBuffer)
	sub := &Subscription{C: ch, key: key, manager: m, cancel: cancel}
	entry.visible[sub] = true

	if len(entry.visible) == 1 {
		if err := entry.notifier.Start(); err != nil {
			delete(entry.visible, sub)
			cancel()
			return nil, err
		}
	}
	entry.notifier.SetVisible(true)

	if m.opts.Metrics != nil {
		m.opts.Metrics.ActiveSubscribers.Inc()
	}
	return sub, nil
}

// Inbox returns the inbox of key, creating an idle notifier if needed.
func (m *Manager) Inbox(key Key) (*Inbox, error) {
	if _, err := m.router.FilterFor(key.Role, key.ActorID, key.Stage); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entryLocked(key).notifier.Inbox(), nil
}

// TransitionApplied polls every running notifier so that dashboards see the move without
// waiting for the next tick.
func (m *Manager) TransitionApplied(order.TransitionRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range m.entries {
		entry.notifier.Trigger()
	}
}

func (m *Manager) TransitionRejected(_, _ order.Status, _ string) {}

// StopAll stops every notifier.
func (m *Manager) StopAll() {
	m.mu.Lock()
	notifiers := make([]*Notifier, 0, len(m.entries))
	for _, entry := range m.entries {
		notifiers = append(notifiers, entry.notifier)
	}
	m.mu.Unlock()

	for _, n := range notifiers {
		n.Stop()
	}
	m.logger.Info("All notifiers stopped", "count", len(notifiers))
}

func (m *Manager) entryLocked(key Key) *managed {
	entry, ok := m.entries[key]
	if !ok {
		entry = &managed{
			notifier: New(key, m.lister, m.opts),
			visible:  make(map[*Subscription]bool),
		}
		m.entries[key] = entry
	}
	return entry
}

// SetVisible reports whether this viewer is looking at the stage. The notifier pauses
// while every viewer is hidden.
func (s *Subscription) SetVisible(visible bool) {
	m := s.manager
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[s.key]
	if !ok {
		return
	}
	if _, open := entry.visible[s]; !open {
		return
	}
	entry.visible[s] = visible

	watching := false
	for _, v := range entry.visible {
		watching = watching || v
	}
	entry.notifier.SetVisible(watching)
}

// Inbox is the inbox of the watched stage.
func (s *Subscription) Inbox() *Inbox {
	m := s.manager
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[s.key].notifier.Inbox()
}

// Close ends the subscription and closes C.
func (s *Subscription) Close() {
	s.once.Do(func() {
		m := s.manager
		m.mu.Lock()
		defer m.mu.Unlock()

		entry := m.entries[s.key]
		delete(entry.visible, s)
		s.cancel()
		if len(entry.visible) == 0 {
			entry.notifier.Stop()
		}
		if m.opts.Metrics != nil {
			m.opts.Metrics.ActiveSubscribers.Dec()
		}
	})
}
