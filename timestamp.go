package jddf

import "time"

// isValidTimestamp reports whether s is a full RFC 3339 date-time: calendar
// date, time-of-day, and offset. It does not widen to other ISO 8601
// profiles such as ordinal or week dates (spec.md §9).
//
// Adapted from formatchecker.IsValidDateTime in the teacher repo, which
// checks the same grammar for JSON Schema's "date-time" format.
func isValidTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
