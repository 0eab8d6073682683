// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that configures
// MySQL or SQLite connections from the application's configuration. The render
// journal is the only consumer.
//
// # Connect
//
// Connect opens the configured driver, tunes the connection pool and pings the
// database within the configured timeout. The connection is optional: callers log
// the error and continue without persistence.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite) so that features can verify their tables match the models
// they expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("journal disabled", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "render_records")
package database
