package utils

import "strings"

// JoinWithAnd joins a slice of SQL clauses with AND.
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of SQL clauses with OR.
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}

// EscapeLike escapes ILIKE wildcards so user input can't inject patterns.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
