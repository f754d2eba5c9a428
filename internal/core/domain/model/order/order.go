package order

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// TagPrefix starts every garment tag number.
const TagPrefix = "GT-"

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
	ErrTicketIsRequired      = errs.NewValueIsRequiredError("ticketNumber")
)

// Order is the aggregate root of the workflow. Its status is always a member of the
// registry; assignment is all-or-nothing; a rack number, when set, matches RackPattern.
type Order struct {
	id           kernel.UUID
	ticketNumber string
	tagNumber    string
	status       Status
	items        []Item
	customer     Customer
	assignment   *Assignment
	rack         RackNumber
	payment      PaymentStatus
	audit        map[string]AuditStamp
	reworkReason string
	reworkCount  int
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
	guard        guard.ConstructorGuard
}

// Snapshot is the flat persistent form of an Order.
type Snapshot struct {
	ID            kernel.UUID
	TicketNumber  string
	TagNumber     string
	Status        Status
	Items         []Item
	Customer      Customer
	Assignment    *Assignment
	RackNumber    string
	PaymentStatus PaymentStatus
	Audit         map[string]AuditStamp
	ReworkReason  string
	ReworkCount   int
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder creates an order in Received with payment pending.
func NewOrder(
	id kernel.UUID,
	ticketNumber string,
	customer Customer,
	items []Item,
	notes string,
	now time.Time,
) (*Order, error) {
	return RestoreOrder(Snapshot{
		ID:            id,
		TicketNumber:  ticketNumber,
		Status:        Received,
		Items:         items,
		Customer:      customer,
		PaymentStatus: PaymentPending,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// RestoreOrder rebuilds an order from storage, enforcing the same invariants as NewOrder.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		tagNumber:    s.TagNumber,
		payment:      s.PaymentStatus,
		reworkReason: s.ReworkReason,
		reworkCount:  s.ReworkCount,
		notes:        s.Notes,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		audit:        maps.Clone(s.Audit),
		guard:        guard.NewConstructorGuard(),
	}
	if o.audit == nil {
		o.audit = make(map[string]AuditStamp)
	}
	if o.payment == PaymentUnknown {
		o.payment = PaymentPending
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setTicketNumber(s.TicketNumber),
		o.setStatus(s.Status),
		o.setItems(s.Items),
		o.setCustomer(s.Customer),
		o.setAssignment(s.Assignment),
		o.setRack(s.RackNumber),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Snapshot returns a deep copy of the order state.
func (o *Order) Snapshot() Snapshot {
	var assignment *Assignment
	if o.assignment != nil {
		a := *o.assignment
		assignment = &a
	}
	return Snapshot{
		ID:            o.id,
		TicketNumber:  o.ticketNumber,
		TagNumber:     o.tagNumber,
		Status:        o.status,
		Items:         slices.Clone(o.items),
		Customer:      o.customer,
		Assignment:    assignment,
		RackNumber:    o.rack.String(),
		PaymentStatus: o.payment,
		Audit:         maps.Clone(o.audit),
		ReworkReason:  o.reworkReason,
		ReworkCount:   o.reworkCount,
		Notes:         o.notes,
		CreatedAt:     o.createdAt,
		UpdatedAt:     o.updatedAt,
	}
}

// Clone returns an independent copy.
func (o *Order) Clone() *Order {
	c, err := RestoreOrder(o.Snapshot())
	if err != nil {
		panic(fmt.Sprintf("clone of valid order failed: %v", err))
	}
	return c
}

func (o *Order) ID() kernel.UUID { return o.id }

func (o *Order) TicketNumber() string { return o.ticketNumber }

func (o *Order) TagNumber() string { return o.tagNumber }

func (o *Order) Status() Status { return o.status }

func (o *Order) Items() []Item { return slices.Clone(o.items) }

func (o *Order) ItemCount() int { return len(o.items) }

func (o *Order) Customer() Customer { return o.customer }

// Assignment returns nil when the order is unassigned.
func (o *Order) Assignment() *Assignment {
	if o.assignment == nil {
		return nil
	}
	a := *o.assignment
	return &a
}

func (o *Order) IsAssigned() bool { return o.assignment != nil }

// IsAssignedTo reports whether the order is assigned to actorID.
func (o *Order) IsAssignedTo(actorID kernel.UUID) bool {
	return o.assignment != nil && o.assignment.ActorID.IsEqual(actorID)
}

func (o *Order) RackNumber() RackNumber { return o.rack }

func (o *Order) PaymentStatus() PaymentStatus { return o.payment }

// Stamp returns the audit stamp recorded under key, e.g. "pickedUp".
func (o *Order) Stamp(key string) (AuditStamp, bool) {
	s, ok := o.audit[key]
	return s, ok
}

func (o *Order) Audit() map[string]AuditStamp { return maps.Clone(o.audit) }

func (o *Order) ReworkReason() string { return o.reworkReason }

func (o *Order) ReworkCount() int { return o.reworkCount }

func (o *Order) Notes() string { return o.notes }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// TotalAmount is the sum of item subtotals in cents.
func (o *Order) TotalAmount() int64 {
	var total int64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Phase reports which Ready for Pickup stage the order is in. Other statuses report AnyPhase.
func (o *Order) Phase() Phase {
	if o.status != ReadyForPickup {
		return AnyPhase
	}
	if o.rack.IsZero() {
		return CollectionPhase
	}
	return DispatchPhase
}

// Apply performs change on the in-memory aggregate. The change must start from the
// current status; persistence adapters repeat the same check atomically.
func (o *Order) Apply(c Change) (TransitionRecord, error) {
	if err := o.Validate(); err != nil {
		return TransitionRecord{}, err
	}
	if err := c.Validate(); err != nil {
		return TransitionRecord{}, err
	}
	if o.status != c.From {
		return TransitionRecord{}, errs.NewStaleStateError(o.id.String(), c.From.String(), o.status.String())
	}

	if c.Assignment != nil {
		a := *c.Assignment
		o.assignment = &a
	}
	if c.ClearAssignment {
		o.assignment = nil
	}
	if !c.Rack.IsZero() {
		o.rack = c.Rack
	}
	if c.TagNumber != "" {
		o.tagNumber = c.TagNumber
	}
	if c.MarkPaid {
		o.payment = PaymentPaid
		o.audit[StampPaymentCollected] = c.By
	}
	if c.ReworkReason != "" {
		o.reworkReason = c.ReworkReason
		o.reworkCount++
	}
	if c.Stamp != "" {
		o.audit[c.Stamp] = c.By
	}
	o.status = c.To
	o.updatedAt = c.By.At

	return TransitionRecord{
		ID:        kernel.NewUUID(),
		OrderID:   o.id,
		From:      c.From,
		To:        c.To,
		Kind:      c.Kind,
		ActorID:   c.By.ByID,
		ActorName: c.By.ByName,
		Role:      c.By.Role,
		At:        c.By.At,
		Note:      c.Note,
	}, nil
}

// UpdateFields changes the free-form fields that are not part of the workflow.
func (o *Order) UpdateFields(p FieldsPatch, now time.Time) error {
	if p.Customer != nil {
		if err := p.Customer.Validate(); err != nil {
			return err
		}
		o.customer = *p.Customer
	}
	if p.Notes != nil {
		o.notes = *p.Notes
	}
	o.updatedAt = now
	return nil
}

// TagNumberFor derives the garment tag printed for a ticket.
func TagNumberFor(ticketNumber string) string {
	return TagPrefix + ticketNumber
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTicketNumber(ticket string) error {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return ErrTicketIsRequired
	}
	o.ticketNumber = ticket
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setCustomer(c Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

func (o *Order) setAssignment(a *Assignment) error {
	if a == nil {
		return nil
	}
	checked, err := NewAssignment(a.ActorID, a.ActorName, a.At)
	if err != nil {
		return err
	}
	o.assignment = &checked
	return nil
}

func (o *Order) setRack(rack string) error {
	if rack == "" {
		return nil
	}
	r, err := NewRackNumber(rack)
	if err != nil {
		return err
	}
	o.rack = r
	return nil
}
