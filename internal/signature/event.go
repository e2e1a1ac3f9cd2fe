package signature

// EventKind identifies an input delivered by a host surface.
type EventKind int

const (
	ContactStart EventKind = iota
	ContactMove
	ContactEnd
	ContactCancel
	// SurfaceLocated carries the surface origin in X and Y.
	SurfaceLocated
	// SurfaceLost reports that the surface geometry is no longer known.
	SurfaceLost
)

func (k EventKind) String() string {
	switch k {
	case ContactStart:
		return "start"
	case ContactMove:
		return "move"
	case ContactEnd:
		return "end"
	case ContactCancel:
		return "cancel"
	case SurfaceLocated:
		return "located"
	case SurfaceLost:
		return "lost"
	}
	return "unknown"
}

// Event is one host input in device coordinates.
type Event struct {
	Kind EventKind
	X    float64
	Y    float64
}

// Source is a host surface that delivers events to a subscriber until the
// returned unsubscribe func is called.
type Source interface {
	Subscribe(sink func(Event)) (unsubscribe func())
}

// Handle applies ev to the capture.
func (c *Capture) Handle(ev Event) {
	switch ev.Kind {
	case ContactStart:
		c.Start(ev.X, ev.Y)
	case ContactMove:
		c.Move(ev.X, ev.Y)
	case ContactEnd:
		c.End()
	case ContactCancel:
		c.Cancel()
	case SurfaceLocated:
		c.Locate(Point{X: ev.X, Y: ev.Y})
	case SurfaceLost:
		c.Unlocate()
	}
}

// Bind subscribes c to src. The returned release unsubscribes, drops any
// in-progress stroke and forgets the geometry, whatever state c is in.
// Release is safe to call more than once.
func (c *Capture) Bind(src Source) (release func()) {
	unsubscribe := src.Subscribe(c.Handle)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		if unsubscribe != nil {
			unsubscribe()
		}
		c.Cancel()
		c.Unlocate()
	}
}
