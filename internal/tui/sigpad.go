package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dancebook/internal/signature"
)

// rect is a screen region in terminal cells.
type rect struct {
	x, y, w, h int
}

func (r rect) empty() bool { return r.w <= 0 || r.h <= 0 }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// sigpad is the terminal surface of a signature.Capture. Device coordinates
// are screen cells scaled so that the pad area spans the capture's width and
// height; a mouse event lands on the centre of its cell.
type sigpad struct {
	capture *signature.Capture
	sink    func(signature.Event)
	release func()

	// latest value handed to the listener
	sig    string
	hasSig bool

	area    rect
	pressed bool
}

func newSigpad(opts signature.Options) *sigpad {
	p := &sigpad{}
	p.capture = signature.New(opts, p.onChange)
	return p
}

func (p *sigpad) onChange(sig string, ok bool) {
	p.sig, p.hasSig = sig, ok
}

// Subscribe implements signature.Source.
func (p *sigpad) Subscribe(sink func(signature.Event)) func() {
	p.sink = sink
	return func() { p.sink = nil }
}

func (p *sigpad) emit(kind signature.EventKind, x, y float64) {
	if p.sink != nil {
		p.sink(signature.Event{Kind: kind, X: x, Y: y})
	}
}

// attach binds the capture to the pad and reports the current geometry.
func (p *sigpad) attach() {
	if p.release == nil {
		p.release = p.capture.Bind(p)
	}
	p.place(p.area)
}

// detach releases the capture; any contact in progress is dropped.
func (p *sigpad) detach() {
	if p.release != nil {
		p.release()
		p.release = nil
	}
	p.pressed = false
}

func (p *sigpad) attached() bool { return p.release != nil }

// place moves the pad to area. An empty area means the geometry is unknown.
func (p *sigpad) place(area rect) {
	p.area = area
	if area.empty() {
		p.emit(signature.SurfaceLost, 0, 0)
		return
	}
	sx, sy := p.scale()
	p.emit(signature.SurfaceLocated, float64(area.x)*sx, float64(area.y)*sy)
}

// scale returns device units per cell on each axis.
func (p *sigpad) scale() (sx, sy float64) {
	opts := p.capture.Options()
	return float64(opts.Width) / float64(p.area.w), float64(opts.Height) / float64(p.area.h)
}

func (p *sigpad) device(cx, cy int) (x, y float64) {
	sx, sy := p.scale()
	return (float64(cx) + 0.5) * sx, (float64(cy) + 0.5) * sy
}

// handleMouse turns mouse input into contact events. It reports whether the
// event belonged to the pad.
func (p *sigpad) handleMouse(msg tea.MouseMsg) bool {
	if !p.attached() || !p.capture.Located() || p.area.empty() {
		return false
	}
	inside := p.area.contains(msg.X, msg.Y)
	x, y := p.device(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return false
		}
		p.pressed = true
		p.emit(signature.ContactStart, x, y)
	case tea.MouseActionMotion:
		if !p.pressed {
			return false
		}
		p.emit(signature.ContactMove, x, y)
		if !inside {
			p.emit(signature.ContactEnd, 0, 0)
			p.pressed = false
		}
	case tea.MouseActionRelease:
		if !p.pressed {
			return false
		}
		p.emit(signature.ContactMove, x, y)
		p.emit(signature.ContactEnd, 0, 0)
		p.pressed = false
	default:
		return false
	}
	return true
}

// blur cancels the contact in progress when the terminal loses focus.
func (p *sigpad) blur() {
	if p.pressed {
		p.emit(signature.ContactCancel, 0, 0)
		p.pressed = false
	}
}

// clear empties the pad.
func (p *sigpad) clear() {
	p.pressed = false
	p.capture.Clear()
}
