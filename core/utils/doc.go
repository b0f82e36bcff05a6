// Package utils provides common utility functions for the order-manager application.
// It includes helper functions for type conversion of loosely typed values
// (JSON payloads, raw database rows) into the concrete types the domain uses.
package utils
