// Package dates converts between the datetime-local input format used by the
// dashboard and the canonical UTC instants stored in the database.
package dates

import "time"

const (
	inputLayout   = "2006-01-02T15:04"
	displayLayout = "Jan 2, 2006, 03:04 PM"
)

// Sentinel strings returned by FormatForDisplay. Display code renders these
// verbatim, so they never change.
const (
	NotScheduled = "Not scheduled"
	InvalidDate  = "Invalid date"
)

// ToCanonicalInstant parses a datetime-local string in the process-local zone
// and returns it as an RFC 3339 UTC string. Returns "" when the input is empty
// or not a valid date-time.
func ToCanonicalInstant(localValue string) string {
	if localValue == "" {
		return ""
	}
	t, err := time.ParseInLocation(inputLayout, localValue, time.Local)
	if err != nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FromCanonicalInstant renders a stored RFC 3339 instant back into the
// datetime-local input format, in the process-local zone. Returns "" when the
// input is empty or unparseable.
func FromCanonicalInstant(storedValue string) string {
	if storedValue == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, storedValue)
	if err != nil {
		return ""
	}
	return t.In(time.Local).Format(inputLayout)
}

// FormatForDisplay renders a stored instant as "Jan 2, 2006, 03:04 PM" in the
// given IANA timezone. An unknown timezone falls back to UTC; a missing or
// unparseable value degrades to a sentinel string. Never panics.
func FormatForDisplay(storedValue, targetTimezone string) string {
	if storedValue == "" {
		return NotScheduled
	}
	t, err := time.Parse(time.RFC3339, storedValue)
	if err != nil {
		return InvalidDate
	}
	loc, err := time.LoadLocation(targetTimezone)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format(displayLayout)
}

// CurrentLocalInputString returns the present moment in datetime-local format,
// used to pre-fill "now" in creation forms.
func CurrentLocalInputString() string {
	return time.Now().Format(inputLayout)
}
