// Package order provides the Order aggregate for medicine requests placed
// with a pharmacy.
//
// The package includes:
//   - Order: the aggregate root holding the code, items, and progress texts
//   - Status: the forward-only lifecycle Pending -> Packed -> Out -> Delivered,
//     with Cancelled reachable from any non-final status
//   - Action: the named dashboard actions (pack, out, deliver, cancel) and the
//     progress and ETA texts each one sets
//
// Every applied action records a StatusChanged event which the persistence
// layer writes to the outbox together with the order.
package order
