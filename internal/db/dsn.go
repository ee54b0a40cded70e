package db

import "strings"

// NormalizeDSN accepts a sqlite database path, with or without the file: URI
// prefix or query options. It trims quotes and whitespace, turns on foreign
// key enforcement (opt-in per connection in sqlite, and the store's vehicle
// reference depends on it), and for file-backed stores enables WAL journaling
// unless the caller already chose a mode.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	if !strings.Contains(s, "_foreign_keys=") {
		s = appendOption(s, "_foreign_keys=on")
	}
	// in-memory stores have no journal file to configure
	if strings.Contains(s, ":memory:") || strings.Contains(s, "mode=memory") {
		return s
	}
	if !strings.Contains(s, "_journal_mode=") {
		s = appendOption(s, "_journal_mode=WAL")
	}
	return s
}

func appendOption(dsn, option string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + option
	}
	return dsn + "?" + option
}

// BarePath strips the file: prefix and query options, leaving the plain path
// golang-migrate's sqlite3 URL scheme expects.
func BarePath(dsn string) string {
	s := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	return s
}
