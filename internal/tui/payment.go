package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dancebook/internal/booking"
)

func newPaymentForm() form {
	return newForm(
		newField("number", "Card number", "1234 5678 9012 3456").formatted(booking.FormatCardNumber),
		newField("expiry", "Expiry (MM/YY)", "12/28").formatted(booking.FormatExpiry),
		newField("cvv", "CVV", "123").formatted(booking.FormatCVV).secret(),
		newField("holder", "Cardholder name", "Jane Doe"),
		newField("billing_email", "Billing email", "you@example.com"),
	)
}

func (m Model) card() booking.Card {
	return booking.Card{
		Number:       m.payment.value("number"),
		Expiry:       m.payment.value("expiry"),
		CVV:          m.payment.value("cvv"),
		Holder:       m.payment.value("holder"),
		BillingEmail: m.payment.value("billing_email"),
	}
}

func (m Model) enterPayment() (tea.Model, tea.Cmd) {
	m.screen = screenPayment
	m.payment.reset()
	m.payment.set("holder", m.session.Name)
	m.payment.set("billing_email", m.session.Email)
	m.status = "enter your card details"
	return m, m.payment.focusField(0)
}

func (m Model) updatePayment(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.busy {
		return m, nil
	}
	if key.String() == "esc" {
		return m.enterWaiver()
	}
	f, submit, cmd := m.payment.update(key)
	m.payment = f
	if !submit {
		return m, cmd
	}

	card := m.card()
	if err := card.Validate(); err != nil {
		m.payment.fail(err)
		return m, nil
	}
	if strings.TrimSpace(m.signature) == "" {
		m.status = "missing waiver signature"
		return m.enterWaiver()
	}
	m.busy = true
	m.status = "processing payment…"
	ctx, b, sess, sig := m.ctx, m.backend, m.session, m.signature
	return m, func() tea.Msg {
		bk, err := b.Book(ctx, sess, sig, card)
		return bookedMsg{b: bk, err: err}
	}
}

func (m Model) onBooked(msg bookedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if errors.Is(msg.err, booking.ErrAlreadyBooked) {
			m.status = msg.err.Error()
			return m.showClass()
		}
		m.payment.fail(msg.err)
		m.status = "payment failed"
		return m, nil
	}
	m.booked = msg.b
	m.signature = ""
	m.payment.reset()
	m.screen = screenConfirm
	m.status = "booking confirmed"
	return m, m.loadOverview()
}

func (m Model) viewPayment() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Payment Information") + "\n")
	if m.overview.FirstClass {
		b.WriteString(badgeStyle.Render("Your first class is FREE!") + "\n")
	}
	b.WriteString("\n")
	price := booking.FormatPrice(m.overview.Class.Price)
	if m.overview.FirstClass {
		price = "FREE"
	}
	b.WriteString("Class:  " + m.overview.Class.Name + "\n")
	b.WriteString("Date:   " + booking.FormatClassDate(m.overview.NextDate) + "\n")
	b.WriteString("Total:  " + priceStyle.Render(price) + "\n\n")
	b.WriteString(m.payment.view())
	if m.busy {
		b.WriteString("\n" + m.spin.View() + " Processing payment...")
	} else {
		b.WriteString("\n" + dimStyle.Render("This is a mock payment. No real charges will be made."))
	}
	return boxStyle.Render(b.String())
}
