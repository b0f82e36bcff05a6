// Package reconcile converges the persisted lines of an order onto a
// submitted desired-state line list.
//
// A reconciliation call partitions the submitted lines into inserts (no id),
// updates (id, no deletion flag), and deletions (id plus deletion flag), then
// applies them inside a single transaction in a fixed order: deletions,
// updates, insertions, and finally propagation of the common order-level
// fields onto every surviving line. Any fatal failure rolls the whole
// transaction back; the one non-fatal case is an update line whose submitted
// fields are all outside the updatable set, which is skipped with a warning.
//
// # Field Schema
//
// A single declarative schema (schema.go) describes every recognized field:
// its column, value kind, whether it may be changed through a line update,
// and whether it is an order-level field replicated onto every line.
// The insert, update, and header-propagation paths all consult this schema.
package reconcile
