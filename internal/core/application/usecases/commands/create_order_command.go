package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTicketNumberIsTaken = errors.New("ticket number is already in use")
)

// ItemInput is the unvalidated form of an order line.
type ItemInput struct {
	Description string
	Quantity    int
	UnitPrice   int64
	ProductRef  string
	Options     map[string]string
}

type CreateOrderCommand struct {
	orderID      kernel.UUID
	ticketNumber string
	customer     order.Customer
	items        []order.Item
	notes        string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	ticketNumber string,
	customer order.Customer,
	items []ItemInput,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTicketNumber(ticketNumber),
		cmd.setCustomer(customer),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c CreateOrderCommand) TicketNumber() string { return c.ticketNumber }

func (c CreateOrderCommand) Customer() order.Customer { return c.customer }

func (c CreateOrderCommand) Items() []order.Item { return c.items }

func (c CreateOrderCommand) Notes() string { return c.notes }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setTicketNumber(ticket string) error {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return order.ErrTicketIsRequired
	}
	if strings.HasPrefix(ticket, order.TagPrefix) {
		return errs.NewValueIsInvalidError("ticketNumber must not use the garment tag prefix")
	}
	c.ticketNumber = ticket
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return order.ErrItemsAreRequired
	}
	items := make([]order.Item, 0, len(inputs))
	var errList []error
	for _, in := range inputs {
		item, err := order.NewItem(in.Description, in.Quantity, in.UnitPrice, in.ProductRef, in.Options)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.items = items
	return nil
}
