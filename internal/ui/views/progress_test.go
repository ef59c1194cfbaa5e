package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"swipedeck/internal/domain"
)

func TestSegmentWidth(t *testing.T) {
	tests := []struct {
		name  string
		total int
		n     int
		want  int
	}{
		{"single page fills the row", 80, 1, 80},
		{"gaps are subtracted", 80, 4, 19},
		{"narrow terminal keeps one cell", 3, 10, 1},
		{"no pages", 80, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SegmentWidth(tc.total, tc.n, segmentGap))
		})
	}
}

func TestSelectOnly(t *testing.T) {
	flags := []bool{true, false, true, false}
	SelectOnly(flags, 3)
	assert.Equal(t, []bool{false, false, false, true}, flags)
}

func TestRenderProgressHighlightsOneSegment(t *testing.T) {
	r := NewRenderer()
	flags := []bool{false, true, false}

	out := r.RenderProgress(flags, 32)
	segments := strings.Fields(out)

	assert.Len(t, segments, 3)
	assert.Contains(t, segments[1], strings.Repeat(segmentSelectedGlyph, 10))
	assert.NotContains(t, segments[0], segmentSelectedGlyph)
	assert.NotContains(t, segments[2], segmentSelectedGlyph)
	assert.LessOrEqual(t, lipgloss.Width(out), 32)
}

func TestRenderShowsPageAndCounter(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:        40,
		Height:       12,
		Title:        "deck",
		Page:         domain.Page{Title: "Second", Body: "body text"},
		Indicators:   []bool{false, true},
		PageCounter:  "2/2",
		AutoAdvance:  true,
		AutoInterval: "5s",
	})

	assert.Contains(t, out, "Second")
	assert.Contains(t, out, "body text")
	assert.Contains(t, out, "2/2")
	assert.Contains(t, out, "auto 5s")
	assert.LessOrEqual(t, lipgloss.Height(out), 12)
}
