package notifier

import (
	"sync"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Entry is one notification. Only Read changes after creation.
type Entry struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	TicketNumber string
	CustomerName string
	Status       order.Status
	Address      string
	Read         bool
	CreatedAt    time.Time
}

// Inbox keeps entries newest first until cleared.
type Inbox struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewInbox() *Inbox {
	return &Inbox{entries: make([]Entry, 0)}
}

func (b *Inbox) add(batch []Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	prepended := make([]Entry, 0, len(batch)+len(b.entries))
	for i := len(batch) - 1; i >= 0; i-- {
		prepended = append(prepended, batch[i])
	}
	b.entries = append(prepended, b.entries...)
}

// List returns a copy of the entries, newest first.
func (b *Inbox) List() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Inbox) Unread() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, e := range b.entries {
		if !e.Read {
			n++
		}
	}
	return n
}

func (b *Inbox) MarkRead(id kernel.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.entries {
		if b.entries[i].ID.IsEqual(id) {
			b.entries[i].Read = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("notification", id.String())
}

func (b *Inbox) MarkAllRead() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.entries {
		b.entries[i].Read = true
	}
}

// Clear removes every entry.
func (b *Inbox) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = make([]Entry, 0)
}
