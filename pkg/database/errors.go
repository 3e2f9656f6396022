package database

import "strings"

// IsUniqueViolation reports whether the error is a SQLite unique-constraint
// failure. Works with both mattn/go-sqlite3 and modernc.org/sqlite drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "constraint failed (2067)") ||
		strings.Contains(errStr, "SQLITE_CONSTRAINT_UNIQUE")
}
