package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/blogem/config-store/models"
)

var (
	// ErrNotFound is returned when no row matches
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a unique index rejects a write
	ErrDuplicateKey = errors.New("duplicate key")
)

// pgUniqueViolation is the SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

// isUniqueViolation recognises unique constraint failures from either driver
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// settingsTable returns the settings table for a scope
func settingsTable(scope models.Scope) (string, error) {
	switch scope {
	case models.ScopePlatform:
		return "platform_settings", nil
	case models.ScopeTenant:
		return "tenant_settings", nil
	default:
		return "", fmt.Errorf("unknown scope %q", scope)
	}
}

// auditTable returns the audit table for a scope
func auditTable(scope models.Scope) (string, error) {
	table, err := settingsTable(scope)
	if err != nil {
		return "", err
	}
	return table + "_audit", nil
}
