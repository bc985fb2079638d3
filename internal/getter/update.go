package getter

import (
	"time"

	"go.uber.org/zap"

	"ionexport/internal/timeutil"
)

// now is swapped out by tests.
var now = time.Now

// RunUpdate downloads readings from the last interval hours, ending at the
// current UTC time rounded down to the ION logging granularity. Interval
// must be between 1 and 12. Update mode always processes every meter.
func RunUpdate(logger *zap.Logger, root string, interval int) error {
	if !IsValidInterval(interval) {
		return ErrInvalidInterval
	}
	end := timeutil.RoundDown(now().UTC())
	start := end.Add(-time.Duration(interval) * time.Hour)
	return RunBatch(logger, root, timeutil.Format(start), timeutil.Format(end), nil)
}
