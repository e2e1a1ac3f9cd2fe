package signature

import "math"

// Point is a surface-local coordinate in device-independent pixels.
type Point struct {
	X float64
	Y float64
}

// Stroke is the ordered point sequence produced by one contact.
type Stroke []Point

// Encoding selects how a serialized signature is wrapped.
type Encoding int

const (
	// Markup hands out the SVG document as-is.
	Markup Encoding = iota
	// DataURI hands out the SVG document as a base64 data URI.
	DataURI
)

func (e Encoding) String() string {
	switch e {
	case DataURI:
		return "datauri"
	default:
		return "markup"
	}
}

// ParseEncoding maps "markup" and "datauri" to an Encoding.
func ParseEncoding(s string) (Encoding, bool) {
	switch s {
	case "markup", "":
		return Markup, true
	case "datauri", "data-uri":
		return DataURI, true
	}
	return Markup, false
}

// Options configures a capture surface and the documents it produces.
type Options struct {
	Width       int
	Height      int
	StrokeColor string
	StrokeWidth float64
	Encoding    Encoding
}

// DefaultOptions returns a 300x200 surface drawing 2px brand-pink strokes.
func DefaultOptions() Options {
	return Options{
		Width:       300,
		Height:      200,
		StrokeColor: "#FF1AA1",
		StrokeWidth: 2,
		Encoding:    Markup,
	}
}

// normalize replaces unusable values with defaults.
func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.StrokeColor == "" {
		o.StrokeColor = d.StrokeColor
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = d.StrokeWidth
	}
	return o
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	if v == 0 {
		// -0 would print as "-0"
		return 0
	}
	return v
}

// finite reports whether both coordinates can be placed on a surface.
func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// near reports whether q is less than one unit away from p on both axes.
func near(p, q Point) bool {
	return math.Abs(p.X-q.X) < 1 && math.Abs(p.Y-q.Y) < 1
}
