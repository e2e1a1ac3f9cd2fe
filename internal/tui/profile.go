package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dancebook/internal/booking"
)

func newBookingsTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Class date", Width: 12},
			{Title: "Status", Width: 10},
			{Title: "Payment", Width: 9},
			{Title: "First", Width: 5},
			{Title: "Booking", Width: 36},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(borderCol).BorderBottom(true).Bold(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("#1F1F1F")).Background(softFg)
	t.SetStyles(st)
	return t
}

func (m Model) showProfile() (tea.Model, tea.Cmd) {
	m.screen = screenProfile
	m.status = "your bookings"
	return m, m.loadBookings()
}

func (m Model) onBookings(msg bookingsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "load error: " + msg.err.Error()
		return m, nil
	}
	m.bookings = msg.bookings
	m.refreshBookingsTable()
	return m, nil
}

// refreshBookingsTable rebuilds the rows in m.bookings order.
func (m *Model) refreshBookingsTable() {
	rows := make([]table.Row, 0, len(m.bookings))
	for i, b := range m.bookings {
		first := ""
		if b.IsFirstClass {
			first = "yes"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			b.ClassDate,
			string(b.Status),
			string(b.PaymentStatus),
			first,
			b.ID,
		})
	}
	m.tbl.SetRows(rows)
	if c := m.tbl.Cursor(); c >= len(rows) {
		m.tbl.SetCursor(max(0, len(rows)-1))
	}
}

func (m Model) selectedBooking() (booking.Booking, bool) {
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.bookings) {
		return booking.Booking{}, false
	}
	return m.bookings[i], true
}

func activeCount(bookings []booking.Booking) int {
	n := 0
	for _, b := range bookings {
		if b.Active() {
			n++
		}
	}
	return n
}

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.busy {
		return m, nil
	}
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		return m.showClass()
	case "o":
		m.status = "signing out…"
		return m, m.logout()
	case "x":
		b, ok := m.selectedBooking()
		if !ok || !b.Active() {
			m.status = "select a confirmed booking to cancel"
			return m, nil
		}
		m.busy = true
		m.status = "cancelling…"
		return m, m.cancelBooking(b.ID)
	case "e":
		b, ok := m.selectedBooking()
		if !ok || !b.WaiverSigned {
			m.status = "select a booking with a signed waiver"
			return m, nil
		}
		m.status = "exporting waiver…"
		return m, m.exportWaiver(b)
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m Model) viewProfile() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Profile") + "\n")
	s.WriteString(dimStyle.Render("Name   ") + m.session.Name + "\n")
	s.WriteString(dimStyle.Render("Email  ") + m.session.Email + "\n\n")
	s.WriteString(sectionStyle.Render(fmt.Sprintf("Active bookings: %d", activeCount(m.bookings))) + "\n")
	if len(m.bookings) == 0 {
		s.WriteString(dimStyle.Render("No bookings yet. Press b to see the class."))
	} else {
		s.WriteString(m.tbl.View())
	}
	return boxStyle.Render(s.String())
}
