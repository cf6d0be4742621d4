package calculator

import (
	"time"

	"yearprogress/internal/model"
)

// YearWindow returns Jan 1 00:00:00 .. Dec 31 23:59:59 UTC of now's UTC year.
func YearWindow(now time.Time) model.YearWindow {
	year := now.UTC().Year()
	return model.YearWindow{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}

// ProgressFraction returns (now - start) / (end - start) without rounding or clamping.
// Instants outside the window yield values outside [0,1]. A window with no
// positive duration yields 0.
func ProgressFraction(now time.Time, w model.YearWindow) float64 {
	total := w.Duration()
	if total <= 0 {
		return 0
	}
	return now.Sub(w.Start).Seconds() / total.Seconds()
}
