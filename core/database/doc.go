// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections for
// production deployments and SQLite connections for local runs and tests,
// selected by the Driver field of the configuration.
//
// # Connect
//
// The Connect function establishes a connection, applies connection pool
// settings, and verifies the connection with a ping before returning.
//
// # Schema Inspection
//
// GetTableColumns retrieves the column definitions for a table. The migrate
// command uses it to report the resulting schema after an auto-migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
