package signature

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestPathData(t *testing.T) {
	tests := []struct {
		name   string
		stroke Stroke
		want   string
	}{
		{name: "empty", stroke: nil, want: ""},
		{name: "single", stroke: Stroke{{3, 4}}, want: "M3,4"},
		{name: "polyline", stroke: Stroke{{10, 10}, {50, 10}, {50, 60}}, want: "M10,10 L50,10 L50,60"},
		{name: "fractions", stroke: Stroke{{0.5, 1.25}, {2, 0}}, want: "M0.5,1.25 L2,0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathData(tt.stroke); got != tt.want {
				t.Errorf("PathData() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeEmpty(t *testing.T) {
	sig, ok := Serialize(nil, DefaultOptions())
	if ok || sig != "" {
		t.Fatalf("Serialize(nil) = %q, %v; want no signature", sig, ok)
	}
}

func TestSerializeDocument(t *testing.T) {
	opts := Options{Width: 300, Height: 150, StrokeColor: "#FF1AA1", StrokeWidth: 2}
	strokes := []Stroke{
		{{10, 10}, {50, 10}, {50, 60}},
		{{70, 20}, {90, 40}},
	}
	sig, ok := Serialize(strokes, opts)
	if !ok {
		t.Fatal("Serialize() reported no signature")
	}
	want := `<svg width="300" height="150" xmlns="http://www.w3.org/2000/svg">` +
		`<path d="M10,10 L50,10 L50,60" stroke="#FF1AA1" stroke-width="2" fill="none" stroke-linecap="round" stroke-linejoin="round"/>` +
		`<path d="M70,20 L90,40" stroke="#FF1AA1" stroke-width="2" fill="none" stroke-linecap="round" stroke-linejoin="round"/>` +
		`</svg>`
	if sig != want {
		t.Fatalf("Serialize() =\n%s\nwant\n%s", sig, want)
	}
}

func TestSerializeEscapesStrokeColor(t *testing.T) {
	opts := DefaultOptions()
	opts.StrokeColor = `red"/><script>x</script><path d="`
	sig, _ := Serialize([]Stroke{{{1, 1}, {9, 9}}}, opts)
	if strings.Contains(sig, "<script>") || strings.Count(sig, "<path ") != 1 {
		t.Fatalf("colour leaked into the markup: %s", sig)
	}
	if !strings.Contains(sig, `stroke="red&#34;/&gt;&lt;script&gt;`) {
		t.Fatalf("colour not escaped: %s", sig)
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	strokes := []Stroke{{{1.5, 2}, {3, 4.75}}, {{100, 100}, {120, 80}, {140, 100}}}
	for _, enc := range []Encoding{Markup, DataURI} {
		opts := DefaultOptions()
		opts.Encoding = enc
		first, _ := Serialize(strokes, opts)
		second, _ := Serialize(strokes, opts)
		if first != second {
			t.Fatalf("%v: serialization differs between calls", enc)
		}
	}
}

func TestSerializeDataURI(t *testing.T) {
	strokes := []Stroke{{{10, 10}, {50, 10}}}
	opts := DefaultOptions()
	markup, _ := Serialize(strokes, opts)

	opts.Encoding = DataURI
	uri, ok := Serialize(strokes, opts)
	if !ok {
		t.Fatal("no signature")
	}
	if !strings.HasPrefix(uri, "data:image/svg+xml;base64,") {
		t.Fatalf("unexpected prefix: %s", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if string(raw) != markup {
		t.Fatalf("payload = %s, want %s", raw, markup)
	}
}

func TestDecode(t *testing.T) {
	strokes := []Stroke{{{10, 10}, {50, 10}}}
	opts := DefaultOptions()
	markup, _ := Serialize(strokes, opts)
	opts.Encoding = DataURI
	uri, _ := Serialize(strokes, opts)

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "markup", in: markup, want: markup},
		{name: "data uri", in: uri, want: markup},
		{name: "padded", in: "  " + markup + "\n", want: markup},
		{name: "empty", in: "", wantErr: true},
		{name: "png uri", in: "data:image/png;base64,AAAA", wantErr: true},
		{name: "bad base64", in: "data:image/svg+xml;base64,@@@", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrNotSignature) {
					t.Fatalf("Decode() error = %v, want ErrNotSignature", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want Encoding
		ok   bool
	}{
		{"", Markup, true},
		{"markup", Markup, true},
		{"datauri", DataURI, true},
		{"data-uri", DataURI, true},
		{"png", Markup, false},
	}
	for _, tt := range tests {
		got, ok := ParseEncoding(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseEncoding(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
