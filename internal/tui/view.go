package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	bodyHeight := max(1, m.height-headerHeight-footerHeight)

	title := " Dance With Helen ─ class booking "
	if m.session.UserID != "" {
		title += dimStyle.Render("· " + m.session.Name + " ")
	}
	header := lipgloss.NewStyle().Width(contentWidth).MaxHeight(1).Render(titleStyle.Render(title))

	var body string
	switch m.screen {
	case screenLoading:
		body = m.spin.View() + " Loading..."
	case screenLogin, screenRegister:
		body = m.viewAuth()
	case screenClass:
		body = m.viewClass()
	case screenWaiver:
		body = m.viewWaiver()
	case screenPayment:
		body = m.viewPayment()
	case screenConfirm:
		body = m.viewConfirm()
	case screenProfile:
		body = m.viewProfile()
	}
	body = lipgloss.NewStyle().Width(contentWidth).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).MaxHeight(1).Render(status),
		lipgloss.NewStyle().Width(contentWidth).MaxHeight(1).Render(m.renderHelp()),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).MaxHeight(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	switch m.screen {
	case screenLogin:
		keys = []string{"tab next field", "enter sign in", "ctrl+r create account", "ctrl+c quit"}
	case screenRegister:
		keys = []string{"tab next field", "enter create account", "esc back to sign in", "ctrl+c quit"}
	case screenClass:
		keys = []string{"b book", "x cancel booking", "p profile", "r refresh", "h help", "q quit"}
	case screenWaiver:
		keys = []string{"↑↓ scroll", "mouse sign", "c clear", "enter continue", "esc back", "q quit"}
	case screenPayment:
		keys = []string{"tab next field", "enter pay", "esc back to waiver", "ctrl+c quit"}
	case screenConfirm:
		keys = []string{"enter class", "p profile", "e export waiver pdf", "q quit"}
	case screenProfile:
		keys = []string{"↑↓ select", "x cancel", "e export waiver pdf", "o sign out", "esc back", "q quit"}
	default:
		keys = []string{"ctrl+c quit"}
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
