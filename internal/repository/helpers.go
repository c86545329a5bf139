package repository

import (
	"database/sql"
)

// nullableFloat converts a *float64 to a value suitable for SQLite storage.
func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// floatFromNull converts a scanned sql.NullFloat64 back to a *float64.
func floatFromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nullableStr converts a *string to a value suitable for SQLite storage.
func nullableStr(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// strFromNull converts a scanned sql.NullString back to a *string.
func strFromNull(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
