package generator

import (
	"yearprogress/internal/clock"
	"yearprogress/internal/formatter"
	"yearprogress/internal/model"
	"yearprogress/internal/readme"
)

// Generator reads the clock once per call and renders the README.
type Generator struct {
	Clock     clock.Clock
	Formatter *formatter.Formatter
	Template  *readme.Template
}

// New creates a new Generator.
func New(c clock.Clock, f *formatter.Formatter, t *readme.Template) *Generator {
	return &Generator{Clock: c, Formatter: f, Template: t}
}

// Progress computes the year progress values for the current instant.
func (g *Generator) Progress() model.YearProgress {
	return g.Formatter.Format(g.Clock.Now())
}

// Render returns the full document for the current instant.
func (g *Generator) Render() string {
	return g.Template.Render(g.Progress())
}

// Refresh rewrites the progress line of an existing document.
// It returns readme.ErrNoProgressLine if doc has none.
func (g *Generator) Refresh(doc string) (string, error) {
	out, ok := readme.Refresh(doc, g.Progress())
	if !ok {
		return "", readme.ErrNoProgressLine
	}
	return out, nil
}
