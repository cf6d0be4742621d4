package readme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yearprogress/internal/model"
)

func sampleProgress() model.YearProgress {
	return model.YearProgress{
		Now:      time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
		Fraction: 0.5,
		Bar:      "{ " + strings.Repeat("█", 15) + strings.Repeat("▁", 15) + " }",
		Percent:  "50.00",
		Label:    "2-Jul-2024",
	}
}

func TestDefault_RendersProgressLine(t *testing.T) {
	p := sampleProgress()
	out := Default().Render(p)

	assert.Contains(t, out, ProgressLine(p)+"\n")
	assert.Equal(t, 1, strings.Count(out, "⏳ **Year Progress:**"))
	assert.NotContains(t, out, "{{")
}

func TestDefault_StaticContentUntouched(t *testing.T) {
	out := Default().Render(sampleProgress())

	assert.True(t, strings.HasPrefix(out, "# Hi there! <img src=\"https://github.com/TheDudeThatCode/TheDudeThatCode/blob/master/Assets/Hi.gif\" width=\"35\" />\n"))
	assert.True(t, strings.HasSuffix(out, "<img src=\"https://readme-jokes.vercel.app/api\" alt=\"Refresh for a new joke\" width=\"11000\" />\n"))
	assert.Contains(t, out, "<!-- BLOG-POST-LIST:START -->")
	assert.Contains(t, out, "• <i>“Real artists ship.” — Steve Jobs</i>")

	// Only the progress line differs between two renders.
	other := sampleProgress()
	other.Percent = "12.34"
	a := strings.Split(out, "\n")
	b := strings.Split(Default().Render(other), "\n")
	require.Equal(t, len(a), len(b))
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
			assert.True(t, strings.HasPrefix(a[i], "⏳"))
		}
	}
	assert.Equal(t, 1, diff)
}

func TestRender_Idempotent(t *testing.T) {
	p := sampleProgress()
	assert.Equal(t, Default().Render(p), Default().Render(p))
}

func TestNew(t *testing.T) {
	_, err := New("no placeholders here")
	assert.ErrorIs(t, err, ErrNoPlaceholders)

	tpl, err := New("progress {{progress_percent}}% / {{progress_percent}}% on {{progress_date}}")
	require.NoError(t, err)
	assert.Equal(t, "progress 50.00% / 50.00% on 2-Jul-2024", tpl.Render(sampleProgress()))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.tmpl.md")
	require.NoError(t, os.WriteFile(path, []byte("# Me\n\n{{progress_bar}}\n"), 0o644))

	tpl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "# Me\n\n"+sampleProgress().Bar+"\n", tpl.Render(sampleProgress()))

	_, err = Load(filepath.Join(dir, "missing.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.md")
	require.NoError(t, os.WriteFile(empty, []byte("static"), 0o644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrNoPlaceholders)
}
