package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/playcell/internal/buffer"
	"github.com/vovakirdan/playcell/internal/runner"
)

type styleKey struct {
	color      string
	background string
	weight     string
}

// textRenderer paints cells with lipgloss styles. Adjacent cells with the
// same style are grouped into one run to minimize ANSI escape sequences.
type textRenderer struct {
	styles map[styleKey]lipgloss.Style
}

func newTextRenderer() *textRenderer {
	return &textRenderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *textRenderer) style(k styleKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.color != "" {
		s = s.Foreground(lipgloss.Color(k.color))
	}
	if k.background != "" {
		s = s.Background(lipgloss.Color(k.background))
	}
	if k.weight == "bold" {
		s = s.Bold(true)
	}
	r.styles[k] = s
	return s
}

func cellKey(c buffer.Cell) styleKey {
	return styleKey{color: c.Color, background: c.Background, weight: c.Weight}
}

// Render converts the buffer to a styled frame string.
func (r *textRenderer) Render(_ *runner.Context, buf *buffer.Buffer) string {
	var sb strings.Builder
	sb.Grow(buf.Cols()*buf.Rows()*2 + buf.Rows())

	for y := 0; y < buf.Rows(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < buf.Cols() {
			start := cellKey(buf.Get(x, y))

			var run strings.Builder
			for x < buf.Cols() {
				cell := buf.Get(x, y)
				if cellKey(cell) != start {
					break
				}
				run.WriteRune(cell.Char)
				x++
			}

			if (start == styleKey{}) {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(r.style(start).Render(run.String()))
			}
		}
	}
	return sb.String()
}

// plainRenderer paints bare characters, one row per line.
type plainRenderer struct{}

func (plainRenderer) Render(_ *runner.Context, buf *buffer.Buffer) string {
	var sb strings.Builder
	sb.Grow(buf.Cols()*buf.Rows() + buf.Rows())

	for y := 0; y < buf.Rows(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < buf.Cols(); x++ {
			sb.WriteRune(buf.Get(x, y).Char)
		}
	}
	return sb.String()
}
