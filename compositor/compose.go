package compositor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose paints every inserted entry over base, bottom to top, and
// returns the combined frame. Painting starts at the topmost opaque
// entry: layers underneath it are covered and their builders never run.
// Anchored entries occupy stacking slots offset by their height plus the
// configured gap; full-surface entries are painted over the whole canvas
// at the origin; centered entries share the center without consuming a
// slot.
func (s *Stack) Compose(base string) string {
	s.mu.Lock()
	if s.width <= 0 || s.height <= 0 || len(s.entries) == 0 {
		s.mu.Unlock()
		return base
	}
	entries := make([]*Entry, len(s.entries))
	copy(entries, s.entries)
	opts := s.opts
	width, height := s.width, s.height
	s.mu.Unlock()

	start := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].spec.Opaque {
			start = i
			break
		}
	}

	ctx := renderContext{width: width, height: height}
	lines := canvasLines(base, height)

	offset := 0
	for _, e := range entries[start:] {
		content := e.render(ctx)
		if content == "" {
			continue
		}

		if e.spec.FillSurface {
			overlayAt(lines, content, 0, 0, width)
			continue
		}

		w := lipgloss.Width(content)
		h := lipgloss.Height(content)
		col, row := placeBox(opts, width, height, w, h, offset)
		overlayAt(lines, content, row, col, width)

		if opts.Anchor != AnchorCenter {
			offset += h + opts.Gap
		}
	}

	return strings.Join(lines, "\n")
}

// placeBox resolves the top-left cell for a w×h box at the given slot
// offset within the anchor's stacking column.
func placeBox(opts Options, width, height, w, h, offset int) (col, row int) {
	switch opts.Anchor {
	case AnchorTopLeft:
		col = opts.MarginX
		row = opts.MarginY + offset
	case AnchorBottomRight:
		col = width - w - opts.MarginX
		row = height - h - opts.MarginY - offset
	case AnchorBottomLeft:
		col = opts.MarginX
		row = height - h - opts.MarginY - offset
	case AnchorCenter:
		col = (width - w) / 2
		row = (height - h) / 2
	default: // AnchorTopRight and the empty string
		col = width - w - opts.MarginX
		row = opts.MarginY + offset
	}

	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return col, row
}

// overlayAt splices content into lines with its top-left cell at
// (row, col), clipping to the canvas. Width arithmetic is ANSI-aware so
// styled base content survives around the box.
func overlayAt(lines []string, content string, row, col, width int) {
	for i, cl := range strings.Split(content, "\n") {
		y := row + i
		if y < 0 || y >= len(lines) || col >= width {
			continue
		}

		cw := ansi.StringWidth(cl)
		if cw == 0 {
			continue
		}
		if col+cw > width {
			cl = ansi.Truncate(cl, width-col, "")
			cw = width - col
		}

		left := ansi.Truncate(lines[y], col, "")
		if lw := ansi.StringWidth(left); lw < col {
			left += strings.Repeat(" ", col-lw)
		}

		right := ""
		if rest := col + cw; rest < ansi.StringWidth(lines[y]) {
			right = ansi.TruncateLeft(lines[y], rest, "")
		}

		lines[y] = left + cl + right
	}
}

// canvasLines splits base and pads it to the canvas height.
func canvasLines(base string, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
