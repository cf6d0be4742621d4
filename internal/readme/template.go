// Package readme renders the profile README from a Markdown template.
//
// The template is opaque text. Only three named placeholders are replaced,
// everything else is reproduced byte for byte.
package readme

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"yearprogress/internal/model"
)

// Placeholders recognised in a template.
const (
	PlaceholderBar     = "{{progress_bar}}"
	PlaceholderPercent = "{{progress_percent}}"
	PlaceholderDate    = "{{progress_date}}"
)

//go:embed template.md
var defaultBody string

// ErrNoPlaceholders is returned for a template that would render no progress values.
var ErrNoPlaceholders = errors.New("template has no progress placeholders")

// Template is a Markdown document with named placeholders.
type Template struct {
	body string
}

// New wraps body. It must contain at least one placeholder.
func New(body string) (*Template, error) {
	if !strings.Contains(body, PlaceholderBar) &&
		!strings.Contains(body, PlaceholderPercent) &&
		!strings.Contains(body, PlaceholderDate) {
		return nil, ErrNoPlaceholders
	}
	return &Template{body: body}, nil
}

// Default returns the embedded profile page template.
func Default() *Template {
	return &Template{body: defaultBody}
}

// Load reads a template from path.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	t, err := New(string(data))
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", path, err)
	}
	return t, nil
}

// Render substitutes p into every placeholder.
func (t *Template) Render(p model.YearProgress) string {
	return replacer(p).Replace(t.body)
}

func replacer(p model.YearProgress) *strings.Replacer {
	return strings.NewReplacer(
		PlaceholderBar, p.Bar,
		PlaceholderPercent, p.Percent,
		PlaceholderDate, p.Label,
	)
}
