package tui

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"dancebook/internal/booking"
	"dancebook/internal/waiver"
)

// waiverPath is where the signed waiver of b is written.
func (m Model) waiverPath(b booking.Booking) string {
	dir := m.opts.ExportDir
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return filepath.Join(dir, "waiver-"+b.ID+".pdf")
}

func (m Model) exportWaiver(b booking.Booking) tea.Cmd {
	path := m.waiverPath(b)
	doc := waiver.Document{
		Class:       m.backend.Class(),
		Booking:     b,
		Participant: m.session.Name,
		Email:       m.session.Email,
	}
	return func() tea.Msg {
		return exportedMsg{path: path, err: writeWaiverFile(path, doc)}
	}
}

func writeWaiverFile(path string, doc waiver.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := waiver.WritePDF(f, doc); err != nil {
		return fmt.Errorf("export %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (m Model) onExported(msg exportedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "export error: " + msg.err.Error()
		return m, nil
	}
	m.status = "waiver saved to " + msg.path
	return m, nil
}
