package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dancebook/internal/booking"
)

const fieldWidth = 40

type field struct {
	key    string
	label  string
	input  textinput.Model
	format func(string) string
}

func newField(key, label, placeholder string) field {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = placeholder
	in.CharLimit = 128
	in.Width = fieldWidth
	return field{key: key, label: label, input: in}
}

func (f field) secret() field {
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func (f field) formatted(fn func(string) string) field {
	f.format = fn
	return f
}

// form is a vertical stack of labelled inputs with per-field errors.
type form struct {
	fields []field
	focus  int
	errs   booking.FieldErrors
	err    string
}

func newForm(fields ...field) form {
	f := form{fields: fields}
	f.focusField(0)
	return f
}

func (f *form) focusField(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.focus = (i + len(f.fields)) % len(f.fields)
	var cmd tea.Cmd
	for j := range f.fields {
		if j == f.focus {
			cmd = f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
	return cmd
}

func (f form) value(key string) string {
	for _, fl := range f.fields {
		if fl.key == key {
			return strings.TrimSpace(fl.input.Value())
		}
	}
	return ""
}

func (f *form) set(key, v string) {
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].input.SetValue(v)
		}
	}
}

// fail shows err next to the offending fields, or above the form when it is
// not a field error.
func (f *form) fail(err error) {
	f.errs, f.err = nil, ""
	if fe, ok := booking.AsFieldErrors(err); ok {
		f.errs = fe
		for i, fl := range f.fields {
			if fe[fl.key] != "" {
				f.focusField(i)
				break
			}
		}
		return
	}
	if err != nil {
		f.err = err.Error()
	}
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
	}
	f.errs, f.err = nil, ""
	f.focusField(0)
}

// update moves focus or edits the focused field. submit is true when enter
// is pressed on the last field.
func (f form) update(msg tea.KeyMsg) (form, bool, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return f, false, f.focusField(f.focus + 1)
	case "shift+tab", "up":
		return f, false, f.focusField(f.focus - 1)
	case "enter":
		if f.focus == len(f.fields)-1 {
			return f, true, nil
		}
		return f, false, f.focusField(f.focus + 1)
	}
	fl := &f.fields[f.focus]
	var cmd tea.Cmd
	fl.input, cmd = fl.input.Update(msg)
	if fl.format != nil {
		if v := fl.format(fl.input.Value()); v != fl.input.Value() {
			fl.input.SetValue(v)
			fl.input.CursorEnd()
		}
	}
	return f, false, cmd
}

func (f form) view() string {
	var b strings.Builder
	if f.err != "" {
		b.WriteString(errStyle.Render(f.err) + "\n\n")
	}
	for i, fl := range f.fields {
		label := fl.label
		if i == f.focus {
			label = keyStyle.Render(label)
		}
		b.WriteString(label + "\n")
		b.WriteString(lipgloss.NewStyle().Width(fieldWidth+4).Render(fl.input.View()) + "\n")
		if msg := f.errs[fl.key]; msg != "" {
			b.WriteString(errStyle.Render(msg) + "\n")
		}
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
