// Package tui is the terminal front end: sign in, read the class, sign the
// waiver on a mouse-driven pad, pay, and manage bookings.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dancebook/internal/booking"
	"dancebook/internal/signature"
	"dancebook/internal/waiver"
)

type screen int

const (
	screenLoading screen = iota
	screenLogin
	screenRegister
	screenClass
	screenWaiver
	screenPayment
	screenConfirm
	screenProfile
)

// Backend is the booking service as the UI drives it.
type Backend interface {
	Class() booking.Class
	CurrentSession(ctx context.Context) (booking.Session, error)
	Register(ctx context.Context, r booking.Registration) (booking.Session, error)
	Login(ctx context.Context, email, password string) (booking.Session, error)
	Logout(ctx context.Context) error
	Overview(ctx context.Context, sess booking.Session) (booking.Overview, error)
	Book(ctx context.Context, sess booking.Session, waiverSignature string, card booking.Card) (booking.Booking, error)
	Cancel(ctx context.Context, sess booking.Session, bookingID string) (booking.Booking, error)
	Bookings(ctx context.Context, userID string) ([]booking.Booking, error)
}

// Options configures the UI.
type Options struct {
	Pad       signature.Options
	ExportDir string // where waiver PDFs are written; "" is the working directory
}

type Model struct {
	ctx     context.Context
	backend Backend
	opts    Options

	width  int
	height int

	screen      screen
	status      string
	helpVisible bool
	busy        bool
	spin        spinner.Model

	session  booking.Session
	overview booking.Overview
	loaded   bool // overview is current

	login    form
	register form

	// waiver
	text viewport.Model
	pad  *sigpad

	// payment
	payment   form
	signature string

	// confirmation
	booked booking.Booking

	// profile
	bookings []booking.Booking
	tbl      table.Model
}

func New(ctx context.Context, backend Backend, opts Options) Model {
	m := Model{
		ctx:         ctx,
		backend:     backend,
		opts:        opts,
		screen:      screenLoading,
		status:      "dancebook ready",
		helpVisible: true,
		login:       newLoginForm(),
		register:    newRegisterForm(),
		payment:     newPaymentForm(),
		pad:         newSigpad(opts.Pad),
	}
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle))
	m.text = viewport.New(0, 0)
	m.text.SetContent(waiver.Text)
	m.tbl = newBookingsTable()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.restoreSession(), m.spin.Tick)
}

type sessionMsg struct {
	sess     booking.Session
	err      error
	restored bool
}

type overviewMsg struct {
	ov  booking.Overview
	err error
}

type bookedMsg struct {
	b   booking.Booking
	err error
}

type cancelledMsg struct {
	b   booking.Booking
	err error
}

type bookingsMsg struct {
	bookings []booking.Booking
	err      error
}

type loggedOutMsg struct{ err error }

type exportedMsg struct {
	path string
	err  error
}

func (m Model) restoreSession() tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		sess, err := b.CurrentSession(ctx)
		return sessionMsg{sess: sess, err: err, restored: true}
	}
}

func (m Model) loadOverview() tea.Cmd {
	ctx, b, sess := m.ctx, m.backend, m.session
	return func() tea.Msg {
		ov, err := b.Overview(ctx, sess)
		return overviewMsg{ov: ov, err: err}
	}
}

func (m Model) loadBookings() tea.Cmd {
	ctx, b, id := m.ctx, m.backend, m.session.UserID
	return func() tea.Msg {
		list, err := b.Bookings(ctx, id)
		return bookingsMsg{bookings: list, err: err}
	}
}

func (m Model) cancelBooking(id string) tea.Cmd {
	ctx, b, sess := m.ctx, m.backend, m.session
	return func() tea.Msg {
		bk, err := b.Cancel(ctx, sess, id)
		return cancelledMsg{b: bk, err: err}
	}
}

func (m Model) logout() tea.Cmd {
	ctx, b := m.ctx, m.backend
	return func() tea.Msg {
		return loggedOutMsg{err: b.Logout(ctx)}
	}
}
