package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dancebook/internal/signature"
)

const padPlaceholder = "sign here with the mouse"

// renderPad draws the committed and in-progress strokes into a w x h cell
// grid, without the border.
func (p *sigpad) renderPad(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	opts := p.capture.Options()
	br := newBrailleBuf(w, h)
	kx := float64(br.dotsW()-1) / float64(opts.Width)
	ky := float64(br.dotsH()-1) / float64(opts.Height)

	draw := func(s signature.Stroke) {
		for i, pt := range s {
			x, y := round(pt.X*kx), round(pt.Y*ky)
			if i == 0 {
				br.setDot(x, y)
				continue
			}
			prev := s[i-1]
			br.line(round(prev.X*kx), round(prev.Y*ky), x, y)
		}
	}
	for _, s := range p.capture.Strokes() {
		draw(s)
	}
	draw(p.capture.Pending())

	ink := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.StrokeColor))
	lines := br.toLines()
	for i := range lines {
		lines[i] = ink.Render(lines[i])
	}
	if br.blank() {
		lines[h/2] = dimStyle.Render(center(padPlaceholder, w))
	}
	return strings.Join(lines, "\n")
}
