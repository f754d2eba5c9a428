// Package scancode turns the text read by a barcode or QR scanner into an order lookup key.
package scancode

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"laundry/internal/pkg/errs"
)

// TagPrefix marks garment tag numbers.
const TagPrefix = "GT-"

type Kind int

const (
	UnknownKind Kind = iota
	OrderID
	TagNumber
	TicketNumber
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:  "unknown",
		OrderID:      "orderId",
		TagNumber:    "tagNumber",
		TicketNumber: "ticketNumber",
	}
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Code is a resolved lookup key.
type Code struct {
	Kind  Kind
	Value string
}

var (
	hexID  = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	uuidID = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

type payload struct {
	OrderID      string `json:"orderId"`
	TicketNumber string `json:"ticketNumber"`
	TagNumber    string `json:"tagNumber"`
}

// Parse resolves raw scanner input. It tries, in order: a JSON payload, a URL whose path
// carries an order id segment, a tag number, and finally falls back to a ticket number.
// Input that looks like JSON or a URL but carries no usable key is a ticket number too;
// only blank input is rejected.
func Parse(raw string) (Code, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Code{}, errs.NewValueIsRequiredError("code")
	}

	if strings.HasPrefix(text, "{") {
		if code, ok := fromPayload(text); ok {
			return code, nil
		}
		return ticket(text), nil
	}

	if u, err := url.Parse(text); err == nil && u.Scheme != "" && u.Host != "" {
		for _, segment := range strings.Split(u.Path, "/") {
			if hexID.MatchString(segment) || uuidID.MatchString(segment) {
				return Code{Kind: OrderID, Value: strings.ToLower(segment)}, nil
			}
		}
		return ticket(text), nil
	}

	if tag, ok := tagNumber(text); ok {
		return Code{Kind: TagNumber, Value: tag}, nil
	}
	return ticket(text), nil
}

func fromPayload(text string) (Code, bool) {
	var p payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return Code{}, false
	}
	switch {
	case strings.TrimSpace(p.OrderID) != "":
		return Code{Kind: OrderID, Value: strings.TrimSpace(p.OrderID)}, true
	case strings.TrimSpace(p.TagNumber) != "":
		if tag, ok := tagNumber(strings.TrimSpace(p.TagNumber)); ok {
			return Code{Kind: TagNumber, Value: tag}, true
		}
		return Code{Kind: TagNumber, Value: strings.TrimSpace(p.TagNumber)}, true
	case strings.TrimSpace(p.TicketNumber) != "":
		return ticket(strings.TrimSpace(p.TicketNumber)), true
	}
	return Code{}, false
}

// tagNumber normalizes the prefix only; the ticket part keeps its case because tags are
// derived from the ticket number verbatim.
func tagNumber(text string) (string, bool) {
	if len(text) < len(TagPrefix) || !strings.EqualFold(text[:len(TagPrefix)], TagPrefix) {
		return "", false
	}
	return TagPrefix + text[len(TagPrefix):], true
}

func ticket(text string) Code {
	return Code{Kind: TicketNumber, Value: text}
}
