package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dancebook/internal/booking"
)

func newLoginForm() form {
	return newForm(
		newField("email", "Email", "you@example.com"),
		newField("password", "Password", "").secret(),
	)
}

func newRegisterForm() form {
	return newForm(
		newField("name", "Full name", "Jane Doe"),
		newField("email", "Email", "you@example.com"),
		newField("phone", "Phone (optional)", "(555) 123-4567"),
		newField("password", "Password", "at least 6 characters").secret(),
		newField("confirm", "Confirm password", "").secret(),
	)
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.busy {
		return m, nil
	}
	if m.screen == screenLogin {
		if key.String() == "ctrl+r" {
			m.screen = screenRegister
			m.status = "create an account"
			return m, m.register.focusField(0)
		}
		f, submit, cmd := m.login.update(key)
		m.login = f
		if submit {
			return m.submitLogin()
		}
		return m, cmd
	}

	if key.String() == "esc" {
		m.screen = screenLogin
		m.status = "please sign in"
		return m, m.login.focusField(0)
	}
	f, submit, cmd := m.register.update(key)
	m.register = f
	if submit {
		return m.submitRegister()
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	email, password := m.login.value("email"), m.login.value("password")
	fe := booking.FieldErrors{}
	switch {
	case email == "":
		fe["email"] = "Email is required"
	case !booking.ValidateEmail(email):
		fe["email"] = "Please enter a valid email"
	}
	if password == "" {
		fe["password"] = "Password is required"
	}
	if len(fe) > 0 {
		m.login.fail(fe)
		return m, nil
	}
	m.busy = true
	m.status = "signing in…"
	ctx, b := m.ctx, m.backend
	return m, func() tea.Msg {
		sess, err := b.Login(ctx, email, password)
		return sessionMsg{sess: sess, err: err}
	}
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	r := booking.Registration{
		Name:     m.register.value("name"),
		Email:    m.register.value("email"),
		Phone:    m.register.value("phone"),
		Password: m.register.value("password"),
		Confirm:  m.register.value("confirm"),
	}
	if err := r.Validate(); err != nil {
		m.register.fail(err)
		return m, nil
	}
	m.busy = true
	m.status = "creating account…"
	ctx, b := m.ctx, m.backend
	return m, func() tea.Msg {
		sess, err := b.Register(ctx, r)
		return sessionMsg{sess: sess, err: err}
	}
}

func (m Model) onSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if msg.restored {
			m.screen = screenLogin
			m.status = "please sign in"
			if !errors.Is(msg.err, booking.ErrNotSignedIn) {
				m.status = "session error: " + msg.err.Error()
			}
			return m, m.login.focusField(0)
		}
		if m.screen == screenRegister {
			m.register.fail(msg.err)
		} else {
			m.login.fail(msg.err)
		}
		m.status = "sign in failed"
		return m, nil
	}
	m.session = msg.sess
	m.login.reset()
	m.register.reset()
	m.status = "signed in as " + msg.sess.Email
	return m.showClass()
}

func (m Model) onLoggedOut(msg loggedOutMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "sign out error: " + msg.err.Error()
		return m, nil
	}
	m.session = booking.Session{}
	m.overview = booking.Overview{}
	m.loaded = false
	m.bookings = nil
	m.screen = screenLogin
	m.status = "signed out"
	return m, m.login.focusField(0)
}

func (m Model) viewAuth() string {
	if m.screen == screenRegister {
		body := titleStyle.Render("Create Account") + "\n" +
			dimStyle.Render("Sign up to book your dance classes") + "\n\n" +
			m.register.view()
		return boxStyle.Render(body)
	}
	body := titleStyle.Render("Welcome Back") + "\n" +
		dimStyle.Render("Sign in to book your dance class") + "\n\n" +
		m.login.view()
	return lipgloss.JoinVertical(lipgloss.Left, boxStyle.Render(body),
		dimStyle.Render(" Don't have an account? press ctrl+r to sign up"))
}
