// Package order exposes the order endpoints: listing, line retrieval, the
// reconciliation entry point, deletion, and archived snapshots.
//
// An order has no header table. Its order-level fields (customer, status,
// totals, remarks) are replicated onto every line row, and the reconcile
// package keeps them consistent across the whole order on every write.
package order
