package waiver

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"dancebook/internal/booking"
	"dancebook/internal/signature"
)

func testSignature(t *testing.T, enc signature.Encoding) string {
	t.Helper()
	opts := signature.DefaultOptions()
	opts.Width, opts.Height = 300, 150
	opts.StrokeWidth = 4
	opts.Encoding = enc
	sig, ok := signature.Serialize([]signature.Stroke{{{X: 10, Y: 75}, {X: 290, Y: 75}}}, opts)
	if !ok {
		t.Fatal("no signature")
	}
	return sig
}

func TestTextListsEveryClause(t *testing.T) {
	for _, clause := range []string{"1. ", "2. ", "3. ", "4. ", "5. ", "6. "} {
		if !strings.Contains(Text, clause) {
			t.Errorf("waiver text missing clause %q", clause)
		}
	}
}

func TestRenderSignature(t *testing.T) {
	for _, enc := range []signature.Encoding{signature.Markup, signature.DataURI} {
		t.Run(enc.String(), func(t *testing.T) {
			img, err := RenderSignature(testSignature(t, enc), 2)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 300 {
				t.Fatalf("bounds = %v, want 600x300", b)
			}
			if c := img.RGBAAt(5, 5); c != (color.RGBA{255, 255, 255, 255}) {
				t.Fatalf("background = %v, want white", c)
			}
			// the stroke runs along y=75 in document units
			if c := img.RGBAAt(300, 150); c == (color.RGBA{255, 255, 255, 255}) {
				t.Fatal("stroke was not drawn")
			}
		})
	}
}

func TestRenderSignatureRejectsGarbage(t *testing.T) {
	if _, err := RenderSignature("hello", 1); !errors.Is(err, signature.ErrNotSignature) {
		t.Fatalf("error = %v, want ErrNotSignature", err)
	}
	if _, err := RenderSignature(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`, 1); err == nil {
		t.Fatal("expected error for an unsized document")
	}
}

func TestRenderSignaturePNG(t *testing.T) {
	data, err := RenderSignaturePNG(testSignature(t, signature.Markup), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("output is not a PNG")
	}
}

func TestWritePDF(t *testing.T) {
	doc := Document{
		Class:       booking.DefaultClass,
		Participant: "Ada Lovelace",
		Email:       "ada@example.com",
		Booking: booking.Booking{
			ID:              "b1",
			ClassDate:       "2026-10-19",
			Status:          booking.StatusConfirmed,
			WaiverSigned:    true,
			WaiverSignature: testSignature(t, signature.DataURI),
			WaiverSignedAt:  time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC),
			PaymentStatus:   booking.PaymentFree,
		},
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, doc); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}

	doc.Booking.WaiverSignature = ""
	if err := WritePDF(&bytes.Buffer{}, doc); !errors.Is(err, booking.ErrSignatureRequired) {
		t.Fatalf("unsigned export error = %v", err)
	}
}

func TestDetailRowsFormatsClassDate(t *testing.T) {
	rows := detailRows(Document{Class: booking.DefaultClass, Booking: booking.Booking{ClassDate: "2026-10-19"}})
	for _, row := range rows {
		if row[0] == "Date" {
			if row[1] != "Monday, October 19, 2026 at 6:00 PM" {
				t.Fatalf("date = %q", row[1])
			}
			return
		}
	}
	t.Fatal("no date row")
}
