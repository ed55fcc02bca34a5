// Package order provides the domain model of the fulfillment subsystem: the
// Order aggregate root, its lifecycle state machine and the tracking document.
//
// The package includes:
//   - Order: The aggregate root managing identity, line items, rider assignment and lifecycle
//   - Status: A state machine that enforces the forward-only fulfillment workflow
//   - Item: An immutable order line fixed at checkout
//   - Tracking: The tracking document owned exclusively by the fulfillment subsystem
//
// Key business rules:
//   - Status advances forward through pending -> processing -> dispatched ->
//     out_for_delivery -> delivered, or diverts to cancelled from any
//     non-terminal state; no backward transition exists
//   - The handoff barcode is assigned exactly once at pack-start and is
//     immutable for the lifetime of the order
//   - Items and delivery address are fixed at order creation
//   - Orders become immutable on reaching delivered or cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
// Concurrency arbitration between independent actors is deliberately not done
// here: it lives in the storage adapter's conditional status write.
package order
