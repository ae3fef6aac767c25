// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the application's
// configuration. The database is optional: it only backs the "database" cache store.
//
// # Connect
//
// Connect builds the driver DSN (with connection and I/O timeouts for MySQL), applies
// pool settings and pings the database before returning it.
//
// # Schema Inspection
//
// Columns and RequireColumns inspect an existing table through the GORM migrator so
// the cache store can refuse a table whose layout it does not recognise.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	err = database.RequireColumns(db, "asset_cache", "cache_key", "payload")
package database
