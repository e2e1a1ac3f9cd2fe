package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.BlurMsg:
		m.pad.blur()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.pad.detach()
			return m, tea.Quit
		}
	case sessionMsg:
		return m.onSession(msg)
	case overviewMsg:
		return m.onOverview(msg)
	case bookedMsg:
		return m.onBooked(msg)
	case cancelledMsg:
		return m.onCancelled(msg)
	case bookingsMsg:
		return m.onBookings(msg)
	case loggedOutMsg:
		return m.onLoggedOut(msg)
	case exportedMsg:
		return m.onExported(msg)
	}

	switch m.screen {
	case screenLogin, screenRegister:
		return m.updateAuth(msg)
	case screenClass:
		return m.updateClass(msg)
	case screenWaiver:
		return m.updateWaiver(msg)
	case screenPayment:
		return m.updatePayment(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}
