// Package order provides the Order aggregate and its state machine.
//
// The package includes:
//   - Status: the lifecycle statuses and the transition table
//   - History: the append-only audit trail
//   - Item: a typed order line
//   - Order: the aggregate root with one method per role-gated operation
//
// Key business rules:
//   - Pending -> Confirmed -> Preparing -> Ready -> Delivering -> Delivered,
//     with Ready -> Preparing for remakes and any non-terminal status -> Cancelled
//   - Delivered and Cancelled are terminal
//   - the kitchen and courier slots are claimed once and never reassigned
//   - refunds accumulate up to the total amount; a full refund cancels the order
//
// Order methods are pure: they take the acting kernel.Actor and the current
// time and leave persistence, authorization by role and notification to the
// application layer.
package order
