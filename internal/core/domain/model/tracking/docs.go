// Package tracking provides the immutable tracking event model for the
// fulfillment service. Events form an append-only ledger per order: they are
// created once, never edited, never deleted, and the customer-facing
// "where is my order" view is derived purely by reading the latest events.
//
// The package includes:
//   - Event: An immutable fact recording a status/location observation for an order
//   - LocationType: A closed enum of the places an event can originate from
//
// Events are duplicated into the order's tracking document for cheap reads and
// into the durable ledger (see the ledgerrepo adapter) for history.
package tracking
