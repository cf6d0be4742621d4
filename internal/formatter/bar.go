package formatter

import (
	"math"
	"strings"

	"github.com/samber/lo"
)

// BarStyle describes how a progress bar is drawn.
type BarStyle struct {
	Capacity int
	Filled   string
	Empty    string
	Open     string
	Close    string
}

// DefaultBarStyle is the 30-glyph bar of the profile page: { ███▁▁▁ }.
var DefaultBarStyle = BarStyle{
	Capacity: 30,
	Filled:   "█",
	Empty:    "▁",
	Open:     "{ ",
	Close:    " }",
}

// RenderProgressBar draws fraction with the default glyphs and the given capacity.
func RenderProgressBar(fraction float64, capacity int) string {
	s := DefaultBarStyle
	s.Capacity = capacity
	return s.Render(fraction)
}

// Render draws exactly Capacity glyphs between Open and Close. The first
// FilledLength(fraction, Capacity) glyphs are Filled, the rest Empty.
func (s BarStyle) Render(fraction float64) string {
	if s.Capacity <= 0 {
		return s.Open + s.Close
	}
	filled := FilledLength(fraction, s.Capacity)

	var b strings.Builder
	b.WriteString(s.Open)
	b.WriteString(strings.Repeat(s.Filled, filled))
	b.WriteString(strings.Repeat(s.Empty, s.Capacity-filled))
	b.WriteString(s.Close)
	return b.String()
}

// FilledLength returns floor(fraction*capacity) truncated toward zero and
// bounded to [0, capacity]. NaN counts as zero.
func FilledLength(fraction float64, capacity int) int {
	if capacity <= 0 || math.IsNaN(fraction) {
		return 0
	}
	n := lo.Clamp(fraction*float64(capacity), 0, float64(capacity))
	return int(n)
}
