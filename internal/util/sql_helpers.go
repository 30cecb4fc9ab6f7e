package util

import "database/sql"

// StringToNullString converts a string to sql.NullString.
// An empty string is treated as NULL, which is what Oracle stores anyway.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullStringToString returns the string or "" for NULL.
func NullStringToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
