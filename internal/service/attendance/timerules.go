package attendance

import (
	"fmt"
	"time"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
)

const clockLayout = "15:04"

// Duration converts a session's clock-in/out ("HH:MM", same calendar
// day) into fractional hours. Sessions that end at or before their start
// are invalid; there is no overnight wrap in this version.
func Duration(start, end string) (float64, error) {
	startAt, err := time.Parse(clockLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", start, err)
	}
	endAt, err := time.Parse(clockLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", end, err)
	}

	if !endAt.After(startAt) {
		return 0, fmt.Errorf("%w: %s-%s", attendance.ErrInvalidTimeRange, start, end)
	}
	return endAt.Sub(startAt).Hours(), nil
}
