// Package actor models the operators that move orders through the workshop.
//
// An Actor is a named person acting in exactly one Role. Roles gate which edges of the
// order status graph an actor may invoke; Admin may invoke every edge and is the only
// role allowed to perform administrative overrides.
package actor
