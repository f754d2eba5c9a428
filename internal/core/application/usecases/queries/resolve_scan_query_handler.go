package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/scancode"
)

type ResolveScanQueryHandler struct {
	orders OrderReader
}

func NewResolveScanQueryHandler(orders OrderReader) ResolveScanQueryHandler {
	return ResolveScanQueryHandler{orders: orders}
}

// Handle looks the code up by id, tag number or ticket number. Ids that are not UUIDs
// (24-hex ids printed by older storefront labels) never match a stored order.
func (h ResolveScanQueryHandler) Handle(ctx context.Context, query ResolveScanQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	code := query.Code()
	switch code.Kind {
	case scancode.OrderID:
		id, err := kernel.UUIDFromString(code.Value)
		if err != nil {
			return OrderView{}, errs.NewObjectNotFoundErrorWithCause("order", code.Value, err)
		}
		o, err := h.orders.Get(ctx, id)
		if err != nil {
			return OrderView{}, err
		}
		return NewOrderView(o), nil
	case scancode.TagNumber:
		return h.first(ctx, order.Filter{TagNumber: code.Value}, code)
	default:
		return h.first(ctx, order.Filter{TicketNumber: code.Value}, code)
	}
}

func (h ResolveScanQueryHandler) first(ctx context.Context, f order.Filter, code scancode.Code) (OrderView, error) {
	orders, err := h.orders.List(ctx, f)
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError(code.Kind.String(), code.Value)
	}
	return NewOrderView(orders[0]), nil
}
