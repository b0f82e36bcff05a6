// Package stock exposes CRUD endpoints for the sellable item master, keyed by
// item code.
package stock
