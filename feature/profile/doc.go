// Package profile exposes the admin, distributor, and corporate profiles.
// Each kind is a singleton record in its own table; the HTTP surface serves
// a normalized view so clients never deal with the per-kind column layout.
package profile
