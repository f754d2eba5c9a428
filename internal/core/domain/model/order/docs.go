// Package order implements the Order aggregate of the laundry workflow and the fixed
// status registry that every transition is checked against.
//
// The registry is a closed directed graph:
//
//	Received ──> Ready for Pickup ──> Received in Workshop ──> Tag Printed ──> Ready for Processing
//	   │          (collection)                                                     │
//	   └──> Cancelled                                                              v
//	                                   ┌──────────────── Sorting ──> Return ──> Out for Delivery
//	                                   v                                             ^
//	   Spotting ──> Dry Cleaning ──> Ironing ──> Quality Check ──> Packing           │
//	      ^                                          │               │               │
//	      └────────────── rework (fail) ─────────────┘               v               │
//	                                                   Ready for Pickup (dispatch) ──┘
//
//	Out for Delivery ──> Delivered
//
// Delivered, Refund and Cancelled are absorbing. Refund is reachable only through an
// administrative override.
//
// Ready for Pickup is used for two stages: awaiting collection by a delivery actor
// (no rack assigned) and packed awaiting dispatch (rack assigned). Edges leaving it are
// tagged with the Phase they require.
package order
