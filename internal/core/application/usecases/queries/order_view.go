package queries

import (
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderView is the read model of a single order as shown on a stage card.
type OrderView struct {
	ID            kernel.UUID
	TicketNumber  string
	TagNumber     string
	Status        order.Status
	Customer      order.Customer
	Items         []ItemView
	Assignment    *order.Assignment
	RackNumber    string
	PaymentStatus order.PaymentStatus
	Audit         map[string]order.AuditStamp
	ReworkReason  string
	ReworkCount   int
	Notes         string
	TotalAmount   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ItemView struct {
	Description string
	Quantity    int
	UnitPrice   int64
	Subtotal    int64
	ProductRef  string
	Options     map[string]string
}

// ActorView is the read model of an operator.
type ActorView struct {
	ID     kernel.UUID
	Name   string
	Role   actor.Role
	Active bool
}

// NewOrderView builds the read model of o. Command results are rendered with it too.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, ItemView{
			Description: it.Description(),
			Quantity:    it.Quantity(),
			UnitPrice:   it.UnitPrice(),
			Subtotal:    it.Subtotal(),
			ProductRef:  it.ProductRef(),
			Options:     it.Options(),
		})
	}

	return OrderView{
		ID:            o.ID(),
		TicketNumber:  o.TicketNumber(),
		TagNumber:     o.TagNumber(),
		Status:        o.Status(),
		Customer:      o.Customer(),
		Items:         views,
		Assignment:    o.Assignment(),
		RackNumber:    o.RackNumber().String(),
		PaymentStatus: o.PaymentStatus(),
		Audit:         o.Audit(),
		ReworkReason:  o.ReworkReason(),
		ReworkCount:   o.ReworkCount(),
		Notes:         o.Notes(),
		TotalAmount:   o.TotalAmount(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderView(o))
	}
	return out
}
