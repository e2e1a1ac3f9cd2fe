// Package signature captures freehand signatures as strokes and serializes
// them to a self-contained SVG document.
//
// A Capture is owned by exactly one surface and driven from one goroutine;
// it performs no locking.
package signature

import "log"

// State is the drawing lifecycle of a Capture.
type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// minStrokePoints is the shortest stroke that gets committed. A contact
// that never moved past the dedup threshold is a tap, not ink.
const minStrokePoints = 2

// Listener receives the serialized signature after every commit and every
// Clear. ok is false when there is no signature.
type Listener func(sig string, ok bool)

// Capture is the drawing session of one signature surface.
type Capture struct {
	opts     Options
	onChange Listener

	// surface origin in device coordinates; unknown until located
	origin  Point
	located bool

	state     State
	committed []Stroke
	pending   Stroke
}

// New returns an empty Capture. Non-positive sizes fall back to defaults.
func New(opts Options, onChange Listener) *Capture {
	return &Capture{opts: opts.normalize(), onChange: onChange}
}

// Options returns the effective options.
func (c *Capture) Options() Options { return c.opts }

// State returns the current lifecycle state.
func (c *Capture) State() State { return c.state }

// Located reports whether the surface geometry is known.
func (c *Capture) Located() bool { return c.located }

// Locate records the surface origin in device coordinates. It may be called
// again whenever the surface moves.
func (c *Capture) Locate(origin Point) {
	c.origin = origin
	c.located = true
}

// Unlocate forgets the surface geometry. Coordinates are dropped until the
// next Locate.
func (c *Capture) Unlocate() {
	c.origin = Point{}
	c.located = false
}

// Strokes returns a copy of the committed strokes in drawing order.
func (c *Capture) Strokes() []Stroke {
	out := make([]Stroke, len(c.committed))
	for i, s := range c.committed {
		out[i] = append(Stroke(nil), s...)
	}
	return out
}

// Pending returns a copy of the in-progress stroke, nil when idle.
func (c *Capture) Pending() Stroke {
	if c.state != Drawing {
		return nil
	}
	return append(Stroke{}, c.pending...)
}

// Signature serializes the committed strokes.
func (c *Capture) Signature() (string, bool) {
	return Serialize(c.committed, c.opts)
}

// Start begins a contact at device coordinates (x, y). A start while a
// contact is already active ends that contact first, unless (x, y) cannot
// be placed, in which case the start is ignored.
func (c *Capture) Start(x, y float64) {
	p, ok := c.local(x, y)
	if !ok && c.state == Drawing {
		return
	}
	if c.state == Drawing {
		c.End()
	}
	c.state = Drawing
	c.pending = nil
	if ok {
		c.pending = append(c.pending, p)
	}
}

// Move extends the active contact. Points closer than one unit to the last
// recorded point on both axes are dropped. Moves while idle are ignored.
func (c *Capture) Move(x, y float64) {
	if c.state != Drawing {
		return
	}
	p, ok := c.local(x, y)
	if !ok {
		return
	}
	if n := len(c.pending); n > 0 && near(c.pending[n-1], p) {
		return
	}
	c.pending = append(c.pending, p)
}

// End finishes the active contact, committing its stroke and notifying the
// listener when the stroke carries ink.
func (c *Capture) End() {
	if c.state != Drawing {
		return
	}
	stroke := c.pending
	c.pending = nil
	c.state = Idle
	if len(stroke) < minStrokePoints {
		return
	}
	c.committed = append(c.committed, stroke)
	log.Printf("[signature] committed stroke %d (%d points)", len(c.committed), len(stroke))
	c.emit()
}

// Cancel drops the active contact without committing.
func (c *Capture) Cancel() {
	if c.state != Drawing {
		return
	}
	c.pending = nil
	c.state = Idle
}

// Clear discards everything and notifies the listener that there is no
// signature.
func (c *Capture) Clear() {
	c.pending = nil
	c.committed = nil
	c.state = Idle
	if c.onChange != nil {
		c.onChange("", false)
	}
}

func (c *Capture) emit() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.Signature())
}

// local translates device coordinates into clamped surface coordinates.
func (c *Capture) local(x, y float64) (Point, bool) {
	if !c.located || !finite(x, y) {
		return Point{}, false
	}
	return Point{
		X: clamp(x-c.origin.X, 0, float64(c.opts.Width)),
		Y: clamp(y-c.origin.Y, 0, float64(c.opts.Height)),
	}, true
}
