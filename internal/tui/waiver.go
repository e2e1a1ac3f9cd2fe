package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dancebook/internal/signature"
	"dancebook/internal/waiver"
)

const (
	headerHeight = 1
	footerHeight = 2
	maxPadCols   = 60
	minPadRows   = 3
	maxPadRows   = 12
	minTextRows  = 3
)

// waiverLayout places the waiver text and the signature pad. View renders
// exactly this layout, so mouse cells can be mapped with it.
type waiverLayout struct {
	textW int
	textH int
	pad   rect // inside the pad border, in screen cells
}

func layoutWaiver(width, height int, opts signature.Options) waiverLayout {
	body := height - headerHeight - footerHeight
	cols := clampInt(width-2, 10, maxPadCols)
	// cells are about twice as tall as wide
	rows := clampInt(round(float64(cols)*float64(opts.Height)/float64(opts.Width)/2), minPadRows, maxPadRows)
	// body: text, label, bordered pad, actions
	textH := body - 1 - (rows + 2) - 1
	if textH < minTextRows {
		rows = max(minPadRows, rows-(minTextRows-textH))
		textH = max(1, body-1-(rows+2)-1)
	}
	return waiverLayout{
		textW: max(10, width-1),
		textH: textH,
		pad:   rect{x: 1, y: headerHeight + textH + 2, w: cols, h: rows},
	}
}

// relayout sizes the waiver text and moves the pad after a resize.
func (m *Model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	l := layoutWaiver(m.width, m.height, m.pad.capture.Options())
	m.text.Width = l.textW
	m.text.Height = l.textH
	m.text.SetContent(lipgloss.NewStyle().Width(l.textW - 1).Render(waiver.Text))
	if m.screen == screenWaiver {
		m.pad.place(l.pad)
	}
	m.tbl.SetHeight(clampInt(m.height-headerHeight-footerHeight-8, 3, 20))
}

func (m Model) enterWaiver() (tea.Model, tea.Cmd) {
	m.screen = screenWaiver
	m.signature = ""
	m.pad.clear()
	m.text.GotoTop()
	m.relayout()
	m.pad.attach()
	m.status = "read the waiver, then sign in the box"
	return m, nil
}

func (m Model) updateWaiver(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.pad.handleMouse(msg) {
			return m, nil
		}
		m.text, cmd = m.text.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			m.pad.detach()
			return m, tea.Quit
		case "esc":
			m.pad.detach()
			m.status = "booking not completed"
			return m.showClass()
		case "c":
			m.pad.clear()
			m.status = "signature cleared"
			return m, nil
		case "enter":
			if !m.pad.hasSig {
				m.status = "please sign the waiver to continue"
				return m, nil
			}
			m.signature = m.pad.sig
			m.pad.detach()
			return m.enterPayment()
		}
		m.text, cmd = m.text.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewWaiver() string {
	l := layoutWaiver(m.width, m.height, m.pad.capture.Options())
	text := lipgloss.NewStyle().Height(l.textH).MaxHeight(l.textH).Render(m.text.View())
	label := sectionStyle.Render("Your Signature") + dimStyle.Render("  hold the left button and draw")
	pad := padBoxStyle.Render(m.pad.renderPad(l.pad.w, l.pad.h))

	cont := dimStyle.Render("[enter] Continue to Payment")
	if m.pad.hasSig {
		cont = keyStyle.Render("[enter] Continue to Payment") + "  " + okStyle.Render("✓ signed")
	}
	actions := keyStyle.Render("[c] Clear") + "   " + cont
	return lipgloss.JoinVertical(lipgloss.Left, text, label, pad, actions)
}
