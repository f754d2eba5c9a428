package queries

import (
	"errors"

	"laundry/internal/pkg/guard"
	"laundry/internal/pkg/scancode"
)

var ErrResolveScanQueryIsNotConstructed = errors.New(
	"ResolveScanQuery must be created via NewResolveScanQuery constructor",
)

// ResolveScanQuery finds the order behind a scanned barcode or QR payload.
type ResolveScanQuery struct {
	code scancode.Code

	guard guard.ConstructorGuard
}

func NewResolveScanQuery(raw string) (ResolveScanQuery, error) {
	code, err := scancode.Parse(raw)
	if err != nil {
		return ResolveScanQuery{}, err
	}

	return ResolveScanQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveScanQuery) Validate() error {
	return q.guard.Validate(ErrResolveScanQueryIsNotConstructed)
}

func (q ResolveScanQuery) Code() scancode.Code { return q.code }
