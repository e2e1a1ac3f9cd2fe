package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dancebook/internal/booking"
)

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "enter", "esc":
		return m.showClass()
	case "p":
		return m.showProfile()
	case "e":
		m.status = "exporting waiver…"
		return m, m.exportWaiver(m.booked)
	}
	return m, nil
}

// classTime is the start of the session a booking is for.
func (m Model) classTime(b booking.Booking) string {
	d, err := time.ParseInLocation("2006-01-02", b.ClassDate, time.Local)
	if err != nil {
		return b.ClassDate
	}
	return booking.FormatClassDate(m.backend.Class().SessionOn(d))
}

func (m Model) viewConfirm() string {
	b := m.booked
	c := m.backend.Class()
	var s strings.Builder
	s.WriteString(okStyle.Render("✓ Booking Confirmed!") + "\n")
	s.WriteString("Your class has been successfully booked.\n\n")
	payment := booking.FormatPrice(c.Price) + " paid"
	if b.PaymentStatus == booking.PaymentFree {
		payment = "FREE (First Class)"
	}
	for _, row := range [][2]string{
		{"Class", c.Name},
		{"Date & Time", m.classTime(b)},
		{"Location", c.Location},
		{"Address", c.Address},
		{"Payment", payment},
		{"Waiver", "signed " + b.WaiverSignedAt.Local().Format("Jan 2, 2006 3:04 PM")},
		{"Booking ID", b.ID},
	} {
		s.WriteString(dimStyle.Render(padLabel(row[0])) + row[1] + "\n")
	}
	s.WriteString("\nSee you on the dance floor!")
	return boxStyle.Render(s.String())
}

func padLabel(s string) string {
	const w = 13
	if len(s) >= w {
		return s + " "
	}
	return s + strings.Repeat(" ", w-len(s))
}
