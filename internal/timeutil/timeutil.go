// Package timeutil holds the date parsing and formatting conventions shared
// by both export modes.
package timeutil

import "time"

const (
	// dateLayout is the accepted form of start/end dates given to batch mode.
	dateLayout = "2006-01-02T15:04:05"
	// destLayout is the timestamp form the destination system ingests. It is
	// used for CSV row timestamps and for output file names.
	destLayout = "2006-01-02 15:04:05"
	// granularity is the ION logging interval.
	granularity = 15 * time.Minute
)

// ParseDate parses a date of the exact form YYYY-MM-DDTHH:MM:SS as UTC.
// A malformed date yields ok=false rather than an error; callers must
// check ok before using the returned time.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders t in the form accepted by ParseDate.
func Format(t time.Time) string {
	return t.Format(dateLayout)
}

// DestTimestamp renders t in the destination system's timestamp form.
func DestTimestamp(t time.Time) string {
	return t.Format(destLayout)
}

// RoundDown floors t to the previous ION logging boundary.
func RoundDown(t time.Time) time.Time {
	return t.Truncate(granularity)
}
