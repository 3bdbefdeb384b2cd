package util

import (
	"fmt"
	"math"
)

// FormatMillis formats a duration given in seconds as whole milliseconds.
func FormatMillis(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dms", int(math.Round(seconds*1000)))
}

// FormatHz formats a frequency, keeping one decimal only when it matters.
func FormatHz(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%.0f Hz", f)
	}
	return fmt.Sprintf("%.1f Hz", f)
}
