// Package formatter turns an instant into the year progress values shown on
// the profile page: the bar, the percentage and the date label.
package formatter

import (
	"time"

	"yearprogress/internal/calculator"
	"yearprogress/internal/model"
)

// Formatter computes a model.YearProgress for a given instant.
type Formatter struct {
	Bar BarStyle
	// Location supplies the day/month/year of the label. Nil keeps now's location.
	Location *time.Location
	// ClampPercent bounds the percentage to [0,100]. The bar is always bounded.
	ClampPercent bool
}

// New creates a Formatter.
func New(bar BarStyle, loc *time.Location, clampPercent bool) *Formatter {
	return &Formatter{Bar: bar, Location: loc, ClampPercent: clampPercent}
}

// Format computes window, fraction, bar, percentage and label for now.
// It is a pure function of now and the Formatter's settings.
func (f *Formatter) Format(now time.Time) model.YearProgress {
	window := calculator.YearWindow(now)
	fraction := calculator.ProgressFraction(now, window)

	pct := fraction
	if f.ClampPercent {
		pct = clampFraction(fraction)
	}

	local := now
	if f.Location != nil {
		local = now.In(f.Location)
	}

	return model.YearProgress{
		Now:      now,
		Window:   window,
		Fraction: fraction,
		Bar:      f.Bar.Render(fraction),
		Percent:  FormatPercentage(pct),
		Label:    FormatDateLabel(local),
	}
}
