package utils

import (
	"fmt"
	"time"
)

// FormatElapsed renders a duration with two decimals in the largest unit that
// keeps the value at or above one (seconds, milliseconds, or microseconds).
// Sub-microsecond durations are reported as whole nanoseconds.
func FormatElapsed(elapsed time.Duration) string {
	switch {
	case elapsed >= time.Second:
		return fmt.Sprintf("%.2fs", elapsed.Seconds())
	case elapsed >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(elapsed.Nanoseconds())/float64(time.Millisecond.Nanoseconds()))
	case elapsed >= time.Microsecond:
		return fmt.Sprintf("%.2fµs", float64(elapsed.Nanoseconds())/float64(time.Microsecond.Nanoseconds()))
	default:
		return fmt.Sprintf("%dns", elapsed.Nanoseconds())
	}
}
