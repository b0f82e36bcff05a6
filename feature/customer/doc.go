// Package customer exposes CRUD endpoints for the customer master, keyed by
// customer code.
package customer
