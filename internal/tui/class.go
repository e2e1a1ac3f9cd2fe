package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dancebook/internal/booking"
)

func (m Model) showClass() (tea.Model, tea.Cmd) {
	m.screen = screenClass
	m.loaded = false
	return m, m.loadOverview()
}

func (m Model) onOverview(msg overviewMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "load error: " + msg.err.Error()
		return m, nil
	}
	m.overview = msg.ov
	m.loaded = true
	return m, nil
}

func (m Model) onCancelled(msg cancelledMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.status = "cancel error: " + msg.err.Error()
		return m, nil
	}
	m.status = "booking for " + msg.b.ClassDate + " cancelled"
	cmds := []tea.Cmd{m.loadOverview()}
	if m.screen == screenProfile {
		cmds = append(cmds, m.loadBookings())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateClass(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.busy {
		return m, nil
	}
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "h":
		m.helpVisible = !m.helpVisible
	case "r":
		m.status = "refreshing…"
		return m, m.loadOverview()
	case "p":
		return m.showProfile()
	case "b", "enter":
		if !m.loaded {
			return m, nil
		}
		if m.overview.Active != nil {
			m.status = "you are already booked for this class"
			return m, nil
		}
		return m.enterWaiver()
	case "x":
		if !m.loaded || m.overview.Active == nil {
			m.status = "no booking to cancel"
			return m, nil
		}
		m.busy = true
		m.status = "cancelling…"
		return m, m.cancelBooking(m.overview.Active.ID)
	}
	return m, nil
}

func (m Model) viewClass() string {
	if !m.loaded {
		return m.spin.View() + " Loading..."
	}
	c := m.overview.Class
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Name) + "\n")
	b.WriteString(c.Description + "\n\n")

	b.WriteString(sectionStyle.Render("Time & Location") + "\n")
	for _, row := range [][2]string{
		{"Date & Time:", booking.FormatClassDate(m.overview.NextDate)},
		{"Location:", c.Location},
		{"Address:", c.Address},
		{"Duration:", fmt.Sprintf("%d minutes", int(c.Duration.Minutes()))},
	} {
		b.WriteString(fmt.Sprintf("  %-13s %s\n", row[0], row[1]))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("What to Expect") + "\n")
	for _, item := range c.WhatToExpect {
		b.WriteString("  " + keyStyle.Render("•") + " " + item + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Pricing") + "\n")
	if m.overview.FirstClass {
		b.WriteString("  Class Price:  " + priceStyle.Render("FREE (First Class)") + "\n")
		b.WriteString("  " + badgeStyle.Render("Your first class is on us!") + "\n")
	} else {
		b.WriteString("  Class Price:  " + priceStyle.Render(booking.FormatPrice(c.Price)) + "\n")
	}
	b.WriteString("\n")

	if m.overview.Active != nil {
		b.WriteString(okStyle.Render("✓ You're booked for this class") + "\n")
		b.WriteString(dimStyle.Render("  press x to cancel your booking"))
	} else {
		b.WriteString(keyStyle.Render("[b] Book This Class"))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
