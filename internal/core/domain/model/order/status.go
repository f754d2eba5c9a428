package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Received
	ReadyForPickup
	ReceivedInWorkshop
	TagPrinted
	ReadyForProcessing
	Sorting
	Spotting
	DryCleaning
	Ironing
	QualityCheck
	Packing
	OutForDelivery
	Delivered
	Return
	Refund
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Received:           "Received",
		ReadyForPickup:     "Ready for Pickup",
		ReceivedInWorkshop: "Received in Workshop",
		TagPrinted:         "Tag Printed",
		ReadyForProcessing: "Ready for Processing",
		Sorting:            "Sorting",
		Spotting:           "Spotting",
		DryCleaning:        "Dry Cleaning",
		Ironing:            "Ironing",
		QualityCheck:       "Quality Check",
		Packing:            "Packing",
		OutForDelivery:     "Out for Delivery",
		Delivered:          "Delivered",
		Return:             "Return",
		Refund:             "Refund",
		Cancelled:          "Cancelled",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		Received, ReadyForPickup, ReceivedInWorkshop, TagPrinted, ReadyForProcessing,
		Sorting, Spotting, DryCleaning, Ironing, QualityCheck, Packing,
		OutForDelivery, Delivered, Return, Refund, Cancelled,
	}
}

// ParseStatus converts a display name such as "Quality Check" into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether s is absorbing.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Refund || s == Cancelled
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
