package readme

import (
	"errors"
	"strings"

	"yearprogress/internal/model"
)

const progressLinePrefix = "⏳ **Year Progress:**"

// ErrNoProgressLine is returned when a document has no year progress line to refresh.
var ErrNoProgressLine = errors.New("no year progress line found")

// ProgressLine renders the single line carrying the computed values.
func ProgressLine(p model.YearProgress) string {
	return progressLinePrefix + " " + p.Bar + " " + p.Percent + "% as on ⏰ " + p.Label
}

// Refresh replaces the first line starting with the year progress prefix
// (ignoring surrounding whitespace) with a freshly rendered ProgressLine.
// The bool is false, and doc is returned untouched, when no such line exists.
func Refresh(doc string, p model.YearProgress) (string, bool) {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), progressLinePrefix) {
			next := ProgressLine(p)
			if strings.HasSuffix(line, "\r") {
				next += "\r"
			}
			lines[i] = next
			return strings.Join(lines, "\n"), true
		}
	}
	return doc, false
}
