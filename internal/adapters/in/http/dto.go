package http

import (
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/generated/servers"
	"laundry/internal/notifier"
)

// visibilityMessage is sent by websocket clients when their view is shown or hidden.
type visibilityMessage struct {
	Visible *bool `json:"visible"`
}

func toCustomer(c order.Customer) servers.Customer {
	return servers.Customer{Name: c.Name, Phone: optional(c.Phone), Address: optional(c.Address)}
}

func fromCustomer(c servers.Customer) order.Customer {
	return order.Customer{Name: c.Name, Phone: deref(c.Phone), Address: deref(c.Address)}
}

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.Item, 0, len(v.Items))
	for _, it := range v.Items {
		item := servers.Item{
			Description: ptr(it.Description),
			Quantity:    ptr(it.Quantity),
			UnitPrice:   ptr(it.UnitPrice),
			Subtotal:    ptr(it.Subtotal),
			ProductRef:  optional(it.ProductRef),
		}
		if len(it.Options) > 0 {
			item.Options = ptr(it.Options)
		}
		items = append(items, item)
	}

	audit := make(map[string]servers.AuditStamp, len(v.Audit))
	for key, stamp := range v.Audit {
		s := servers.AuditStamp{
			At:     ptr(stamp.At),
			ByName: ptr(stamp.ByName),
			Role:   ptr(servers.Role(stamp.Role.String())),
		}
		if !stamp.ByID.IsZero() {
			s.ById = ptr(stamp.ByID.String())
		}
		audit[key] = s
	}

	resp := servers.Order{
		Id:            ptr(v.ID.Bytes()),
		TicketNumber:  ptr(v.TicketNumber),
		TagNumber:     optional(v.TagNumber),
		Status:        ptr(servers.Status(v.Status.String())),
		Customer:      ptr(toCustomer(v.Customer)),
		Items:         &items,
		RackNumber:    optional(v.RackNumber),
		PaymentStatus: ptr(servers.OrderPaymentStatus(v.PaymentStatus.String())),
		Audit:         &audit,
		ReworkReason:  optional(v.ReworkReason),
		ReworkCount:   ptr(v.ReworkCount),
		Notes:         optional(v.Notes),
		TotalAmount:   ptr(v.TotalAmount),
		CreatedAt:     ptr(v.CreatedAt),
		UpdatedAt:     ptr(v.UpdatedAt),
	}
	if v.Assignment != nil {
		resp.Assignment = &servers.Assignment{
			ActorId:   ptr(v.Assignment.ActorID.Bytes()),
			ActorName: ptr(v.Assignment.ActorName),
			At:        ptr(v.Assignment.At),
		}
	}
	return resp
}

func toOrders(views []queries.OrderView) []servers.Order {
	out := make([]servers.Order, 0, len(views))
	for _, v := range views {
		out = append(out, toOrder(v))
	}
	return out
}

func toDomainOrder(o *order.Order) servers.Order {
	return toOrder(queries.NewOrderView(o))
}

func toDetails(d queries.OrderDetails) servers.OrderDetails {
	history := make([]servers.Transition, 0, len(d.History))
	for _, rec := range d.History {
		t := servers.Transition{
			Id:        ptr(rec.ID.Bytes()),
			From:      ptr(servers.Status(rec.From.String())),
			To:        ptr(servers.Status(rec.To.String())),
			Kind:      ptr(servers.TransitionKind(rec.Kind.String())),
			ActorName: ptr(rec.ActorName),
			Role:      ptr(servers.Role(rec.Role.String())),
			At:        ptr(rec.At),
			Note:      optional(rec.Note),
		}
		if !rec.ActorID.IsZero() {
			t.ActorId = ptr(rec.ActorID.String())
		}
		history = append(history, t)
	}

	next := make([]servers.Status, 0, len(d.Next))
	for _, s := range d.Next {
		next = append(next, servers.Status(s.String()))
	}

	return servers.OrderDetails{Order: ptr(toOrder(d.Order)), History: &history, Next: &next}
}

func toActors(views []queries.ActorView) []servers.Actor {
	out := make([]servers.Actor, 0, len(views))
	for _, v := range views {
		out = append(out, servers.Actor{
			Id:     ptr(v.ID.Bytes()),
			Name:   ptr(v.Name),
			Role:   ptr(servers.Role(v.Role.String())),
			Active: ptr(v.Active),
		})
	}
	return out
}

func toEntry(e notifier.Entry) servers.NotificationEntry {
	return servers.NotificationEntry{
		Id:           ptr(e.ID.Bytes()),
		OrderId:      ptr(e.OrderID.Bytes()),
		TicketNumber: ptr(e.TicketNumber),
		CustomerName: ptr(e.CustomerName),
		Status:       ptr(servers.Status(e.Status.String())),
		Address:      optional(e.Address),
		Read:         ptr(e.Read),
		CreatedAt:    ptr(e.CreatedAt),
	}
}

func toInbox(inbox *notifier.Inbox) servers.Inbox {
	entries := inbox.List()
	out := make([]servers.NotificationEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntry(e))
	}
	return servers.Inbox{Unread: ptr(inbox.Unread()), Entries: &out}
}
