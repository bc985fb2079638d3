package getter

import "errors"

// Pre-flight failures. Each one is distinct so callers can tell which
// input was rejected.
var (
	ErrInvalidDates    = errors.New("invalid or missing dates")
	ErrStartAfterEnd   = errors.New("start date must come before end date")
	ErrRootNotFound    = errors.New("root directory not found")
	ErrInvalidIndex    = errors.New("index must be a non-negative integer")
	ErrInvalidInterval = errors.New("interval must be between 1 and 12 hours")
)

// IsValidInterval reports whether interval is a usable number of look-back
// hours for update mode.
func IsValidInterval(interval int) bool {
	return interval >= 1 && interval <= 12
}

// IsValidIndex reports whether idx can select a meter position.
func IsValidIndex(idx int) bool {
	return idx >= 0
}
