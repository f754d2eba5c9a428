// Package kernel holds the shared primitives of the laundry domain model.
//
// The package includes:
//   - UUID: the identifier value object used by orders, actors and transition records
//   - Clock: the source of audit timestamps, replaceable in tests
package kernel
