package database

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// OpenDB opens a database connection for the given driver
func OpenDB(driver, dataSourceName string) (*sqlx.DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer; one connection keeps audit chain appends serialized
		db.SetMaxOpenConns(1)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == DriverSQLite {
		if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return db, nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(driver, dataSourceName string) (*sqlx.DB, error) {
	db, err := OpenDB(driver, dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// IsPostgres reports whether the connection uses the PostgreSQL driver
func IsPostgres(db *sqlx.DB) bool {
	return db.DriverName() == DriverPostgres
}
