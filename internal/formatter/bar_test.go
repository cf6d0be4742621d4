package formatter

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyphs(bar string) string {
	return strings.TrimSuffix(strings.TrimPrefix(bar, "{ "), " }")
}

func TestRenderProgressBar_Boundaries(t *testing.T) {
	assert.Equal(t, "{ "+strings.Repeat("▁", 30)+" }", RenderProgressBar(0, 30))
	assert.Equal(t, "{ "+strings.Repeat("█", 30)+" }", RenderProgressBar(1, 30))
}

func TestRenderProgressBar_Half(t *testing.T) {
	want := "{ " + strings.Repeat("█", 15) + strings.Repeat("▁", 15) + " }"
	assert.Equal(t, want, RenderProgressBar(0.5, 30))
}

func TestRenderProgressBar_Truncates(t *testing.T) {
	// 0.999 * 30 = 29.97 -> 29
	bar := glyphs(RenderProgressBar(0.999, 30))
	assert.Equal(t, 29, strings.Count(bar, "█"))
	assert.Equal(t, 1, strings.Count(bar, "▁"))
}

func TestRenderProgressBar_AlwaysCapacityGlyphs(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		fraction := float64(i) / 1000
		for _, capacity := range []int{1, 7, 30, 64} {
			bar := glyphs(RenderProgressBar(fraction, capacity))
			require.Equal(t, capacity, utf8.RuneCountInString(bar), "fraction=%v capacity=%d", fraction, capacity)
		}
	}
}

func TestRenderProgressBar_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		filled   int
	}{
		{"negative", -0.25, 0},
		{"slightly negative", -0.0001, 0},
		{"past end", 1.3, 30},
		{"huge", 1e300, 30},
		{"infinite", math.Inf(1), 30},
		{"negative infinite", math.Inf(-1), 0},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := glyphs(RenderProgressBar(tt.fraction, 30))
			assert.Equal(t, 30, utf8.RuneCountInString(bar))
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
		})
	}
}

func TestRenderProgressBar_ZeroCapacity(t *testing.T) {
	assert.Equal(t, "{  }", RenderProgressBar(0.5, 0))
	assert.Equal(t, "{  }", RenderProgressBar(0.5, -3))
}

func TestBarStyle_CustomGlyphs(t *testing.T) {
	s := BarStyle{Capacity: 4, Filled: "#", Empty: "-", Open: "[", Close: "]"}
	assert.Equal(t, "[##--]", s.Render(0.5))
	assert.Equal(t, "[----]", s.Render(0.2))
	assert.Equal(t, "[###-]", s.Render(0.75))
}

func TestFilledLength(t *testing.T) {
	assert.Equal(t, 0, FilledLength(0, 30))
	assert.Equal(t, 15, FilledLength(0.5, 30))
	assert.Equal(t, 30, FilledLength(1, 30))
	assert.Equal(t, 0, FilledLength(0.5, 0))
}
