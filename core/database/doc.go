// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The database is an optional
// property source: rows of the property_overrides table override file-based
// configuration.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the property source verify that the
// overrides table has the expected shape before reading from it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "property_overrides", "section", "prop_key", "prop_value")
package database
