package order

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"strings"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// RackPattern is the accepted rack code format: one upper-case letter and one or two digits.
var RackPattern = regexp.MustCompile(`^[A-Z][0-9]{1,2}$`)

// RackNumber is a physical storage-bin code such as "B2". The zero value means no rack.
type RackNumber struct {
	value string
}

func NewRackNumber(s string) (RackNumber, error) {
	if !RackPattern.MatchString(s) {
		return RackNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"rackNumber",
			fmt.Errorf("%q does not match %s", s, RackPattern.String()),
		)
	}
	return RackNumber{value: s}, nil
}

func (r RackNumber) String() string { return r.value }

func (r RackNumber) IsZero() bool { return r.value == "" }

// PaymentStatus tracks cash-on-delivery collection.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
)

func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "Pending"
	case PaymentPaid:
		return "Paid"
	default:
		return "Unknown"
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "Pending":
		return PaymentPending, nil
	case "Paid":
		return PaymentPaid, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a payment status", s))
	}
}

// Assignment binds an order to a delivery actor. It is always complete: actor id,
// display name and timestamp are set together.
type Assignment struct {
	ActorID   kernel.UUID
	ActorName string
	At        time.Time
}

func NewAssignment(actorID kernel.UUID, actorName string, at time.Time) (Assignment, error) {
	if err := errors.Join(
		actorID.Validate(),
		requireString("assignedToName", actorName),
		requireTime("assignedAt", at),
	); err != nil {
		return Assignment{}, err
	}
	return Assignment{ActorID: actorID, ActorName: strings.TrimSpace(actorName), At: at}, nil
}

// AuditStamp records who performed a stage and when.
type AuditStamp struct {
	At     time.Time
	ByID   kernel.UUID
	ByName string
	Role   actor.Role
}

// Customer is the snapshot of customer details taken at intake.
type Customer struct {
	Name    string
	Phone   string
	Address string
}

func (c Customer) Validate() error {
	return requireString("customerName", c.Name)
}

// Item is one line of an order. Items are immutable.
type Item struct {
	description string
	quantity    int
	unitPrice   int64
	productRef  string
	options     map[string]string
}

func NewItem(description string, quantity int, unitPrice int64, productRef string, options map[string]string) (Item, error) {
	var errList []error
	if strings.TrimSpace(description) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("description"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if unitPrice < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{
		description: strings.TrimSpace(description),
		quantity:    quantity,
		unitPrice:   unitPrice,
		productRef:  productRef,
		options:     maps.Clone(options),
	}, nil
}

func (i Item) Description() string { return i.description }

func (i Item) Quantity() int { return i.quantity }

func (i Item) UnitPrice() int64 { return i.unitPrice }

func (i Item) ProductRef() string { return i.productRef }

func (i Item) Options() map[string]string { return maps.Clone(i.options) }

func (i Item) Subtotal() int64 { return int64(i.quantity) * i.unitPrice }

func requireString(param, v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func requireTime(param string, v time.Time) error {
	if v.IsZero() {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
