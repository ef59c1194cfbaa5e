package views

import (
	"strings"
)

const (
	segmentSelectedGlyph = "━"
	segmentIdleGlyph     = "─"
	segmentGap           = 1
)

// SegmentWidth returns the width of each of n equal segments separated by
// gap cells within total cells. Segments are at least one cell wide.
func SegmentWidth(total, n, gap int) int {
	if n < 1 {
		return 0
	}
	w := (total - gap*(n-1)) / n
	if w < 1 {
		w = 1
	}
	return w
}

// SelectOnly marks index as the only selected flag
func SelectOnly(flags []bool, index int) {
	for i := range flags {
		flags[i] = i == index
	}
}

// RenderProgress renders one segment per flag across width cells
func (r *Renderer) RenderProgress(flags []bool, width int) string {
	segWidth := SegmentWidth(width, len(flags), segmentGap)
	selected := strings.Repeat(segmentSelectedGlyph, segWidth)
	idle := strings.Repeat(segmentIdleGlyph, segWidth)

	parts := make([]string, len(flags))
	for i, on := range flags {
		if on {
			parts[i] = r.styles.SegmentSelected.Render(selected)
		} else {
			parts[i] = r.styles.SegmentIdle.Render(idle)
		}
	}
	return strings.Join(parts, strings.Repeat(" ", segmentGap))
}
