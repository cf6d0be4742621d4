package model

import "time"

// YearWindow spans the first to the last second of a calendar year.
type YearWindow struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (w YearWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// YearProgress is the formatter output substituted into the README template.
type YearProgress struct {
	Now      time.Time
	Window   YearWindow
	Fraction float64 // elapsed share of the window, unclamped
	Bar      string
	Percent  string // two decimals, no % sign
	Label    string // D-Mon-YYYY
}
