package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dancebook/internal/signature"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// newTestPad returns an attached 300x150 pad on cells x 1..60, y 5..19, so
// one cell is 5x10 device units.
func newTestPad(t *testing.T) *sigpad {
	t.Helper()
	p := newSigpad(signature.Options{Width: 300, Height: 150})
	p.place(rect{x: 1, y: 5, w: 60, h: 15})
	p.attach()
	if !p.capture.Located() {
		t.Fatal("pad not located after attach")
	}
	return p
}

func TestSigpadDrawsInSurfaceCoordinates(t *testing.T) {
	p := newTestPad(t)

	for _, msg := range []tea.MouseMsg{press(1, 5), motion(11, 5), release(11, 10)} {
		if !p.handleMouse(msg) {
			t.Fatalf("pad ignored %+v", msg)
		}
	}

	want := []signature.Stroke{{{X: 2.5, Y: 5}, {X: 52.5, Y: 5}, {X: 52.5, Y: 55}}}
	if got := p.capture.Strokes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("strokes = %v, want %v", got, want)
	}
	if !p.hasSig || !strings.Contains(p.sig, `d="M2.5,5 L52.5,5 L52.5,55"`) {
		t.Fatalf("listener got %q (%v)", p.sig, p.hasSig)
	}
}

func TestSigpadIgnoresInputBeforeGeometry(t *testing.T) {
	p := newSigpad(signature.Options{Width: 300, Height: 150})
	p.attach()
	if p.handleMouse(press(3, 3)) || p.handleMouse(motion(9, 9)) {
		t.Fatal("events consumed without geometry")
	}

	p.place(rect{x: 0, y: 0, w: 30, h: 10})
	p.handleMouse(press(3, 3))
	p.handleMouse(motion(9, 9))
	p.handleMouse(release(9, 9))
	if n := len(p.capture.Strokes()); n != 1 {
		t.Fatalf("strokes after geometry arrived = %d, want 1", n)
	}
}

func TestSigpadLeavingEndsContact(t *testing.T) {
	p := newTestPad(t)

	p.handleMouse(press(1, 5))
	p.handleMouse(motion(21, 5))
	p.handleMouse(motion(70, 5)) // right of the pad
	if p.pressed || p.capture.State() != signature.Idle {
		t.Fatal("contact still active after leaving the pad")
	}
	if p.handleMouse(release(70, 5)) {
		t.Fatal("release outside consumed after contact ended")
	}

	want := []signature.Stroke{{{X: 2.5, Y: 5}, {X: 102.5, Y: 5}, {X: 300, Y: 5}}}
	if got := p.capture.Strokes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("strokes = %v, want %v", got, want)
	}
}

func TestSigpadPressOutsideIsIgnored(t *testing.T) {
	p := newTestPad(t)
	if p.handleMouse(press(0, 0)) {
		t.Fatal("press outside the pad consumed")
	}
	wheel := tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	if p.handleMouse(wheel) {
		t.Fatal("wheel consumed by the pad")
	}
	if p.capture.State() != signature.Idle {
		t.Fatal("capture started drawing")
	}
}

func TestSigpadBlurCancels(t *testing.T) {
	p := newTestPad(t)
	p.handleMouse(press(1, 5))
	p.handleMouse(motion(30, 10))
	p.blur()
	if p.capture.State() != signature.Idle || len(p.capture.Strokes()) != 0 || p.hasSig {
		t.Fatalf("blur committed or kept the stroke: %v", p.capture.Strokes())
	}
}

func TestSigpadDetachMidStroke(t *testing.T) {
	p := newTestPad(t)
	p.handleMouse(press(1, 5))
	p.handleMouse(motion(30, 10))
	p.detach()

	if p.capture.State() != signature.Idle || p.capture.Located() {
		t.Fatalf("after detach: state=%v located=%v", p.capture.State(), p.capture.Located())
	}
	if p.handleMouse(press(2, 6)) {
		t.Fatal("detached pad consumed input")
	}
	p.detach() // second release is harmless
}

func TestSigpadClear(t *testing.T) {
	p := newTestPad(t)
	p.handleMouse(press(1, 5))
	p.handleMouse(release(20, 8))
	if !p.hasSig {
		t.Fatal("no signature after stroke")
	}
	p.clear()
	if p.hasSig || p.sig != "" || len(p.capture.Strokes()) != 0 {
		t.Fatal("clear left ink behind")
	}
}

func TestRenderPad(t *testing.T) {
	p := newTestPad(t)
	empty := p.renderPad(60, 15)
	if !strings.Contains(empty, padPlaceholder) {
		t.Fatal("empty pad has no placeholder")
	}

	p.handleMouse(press(1, 5))
	p.handleMouse(release(60, 5))
	out := p.renderPad(60, 15)
	lines := strings.Split(out, "\n")
	if len(lines) != 15 {
		t.Fatalf("rendered %d rows, want 15", len(lines))
	}
	if strings.Contains(out, padPlaceholder) {
		t.Fatal("placeholder drawn over ink")
	}
	if !hasInk(lines[0]) {
		t.Fatalf("top row has no ink: %q", lines[0])
	}
	if hasInk(lines[14]) {
		t.Fatalf("bottom row has ink: %q", lines[14])
	}
}

func hasInk(s string) bool {
	for _, r := range s {
		if r > 0x2800 && r <= 0x28FF {
			return true
		}
	}
	return false
}
