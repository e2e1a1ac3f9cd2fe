package signature

import (
	"encoding/base64"
	"errors"
	"html"
	"strconv"
	"strings"
)

const (
	svgNamespace  = "http://www.w3.org/2000/svg"
	dataURIPrefix = "data:image/svg+xml;base64,"
)

// ErrNotSignature is returned by Decode for strings that are neither SVG
// markup nor an SVG data URI.
var ErrNotSignature = errors.New("signature: not an svg document")

// PathData renders a stroke as SVG path commands: a move-to the first point
// followed by a line-to for each later point.
func PathData(s Stroke) string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('M')
	writePoint(&b, s[0])
	for _, p := range s[1:] {
		b.WriteString(" L")
		writePoint(&b, p)
	}
	return b.String()
}

// Serialize builds the signature document for strokes. The output depends
// only on its inputs. ok is false when there are no strokes.
func Serialize(strokes []Stroke, opts Options) (sig string, ok bool) {
	if len(strokes) == 0 {
		return "", false
	}
	opts = opts.normalize()
	var b strings.Builder
	b.WriteString(`<svg width="`)
	b.WriteString(strconv.Itoa(opts.Width))
	b.WriteString(`" height="`)
	b.WriteString(strconv.Itoa(opts.Height))
	b.WriteString(`" xmlns="` + svgNamespace + `">`)
	for _, s := range strokes {
		if len(s) == 0 {
			continue
		}
		b.WriteString(`<path d="`)
		b.WriteString(PathData(s))
		b.WriteString(`" stroke="`)
		b.WriteString(html.EscapeString(opts.StrokeColor))
		b.WriteString(`" stroke-width="`)
		b.WriteString(formatCoord(opts.StrokeWidth))
		b.WriteString(`" fill="none" stroke-linecap="round" stroke-linejoin="round"/>`)
	}
	b.WriteString(`</svg>`)

	doc := b.String()
	if opts.Encoding == DataURI {
		return dataURIPrefix + base64.StdEncoding.EncodeToString([]byte(doc)), true
	}
	return doc, true
}

// Decode returns the SVG markup held by a serialized signature in either
// encoding.
func Decode(sig string) (string, error) {
	s := strings.TrimSpace(sig)
	if strings.HasPrefix(s, dataURIPrefix) {
		raw, err := base64.StdEncoding.DecodeString(s[len(dataURIPrefix):])
		if err != nil {
			return "", errors.Join(ErrNotSignature, err)
		}
		s = string(raw)
	}
	if !strings.HasPrefix(s, "<svg") {
		return "", ErrNotSignature
	}
	return s, nil
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(formatCoord(p.X))
	b.WriteByte(',')
	b.WriteString(formatCoord(p.Y))
}

// formatCoord prints the shortest decimal that round-trips, so whole pixels
// come out without a fraction.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
