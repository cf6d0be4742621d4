package formatter

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatDateLabel formats now as D-Mon-YYYY using now's own location,
// e.g. "2-Jul-2024". The day is not zero padded.
func FormatDateLabel(now time.Time) string {
	return fmt.Sprintf("%d-%s-%d", now.Day(), monthNames[int(now.Month())-1], now.Year())
}

// FormatPercentage returns fraction*100 with exactly two decimals.
func FormatPercentage(fraction float64) string {
	return fmt.Sprintf("%.2f", fraction*100)
}

func clampFraction(fraction float64) float64 {
	return lo.Clamp(fraction, 0, 1)
}
