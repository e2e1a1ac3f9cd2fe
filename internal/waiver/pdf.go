package waiver

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"dancebook/internal/booking"
)

// Document is everything printed on an exported waiver.
type Document struct {
	Class       booking.Class
	Booking     booking.Booking
	Participant string
	Email       string
}

const (
	pageMargin    = 20.0 // mm
	signatureMaxW = 90.0 // mm
	rasterScale   = 3.0
	signatureName = "signature"
)

// WritePDF renders doc as a one-page A4 PDF.
func WritePDF(w io.Writer, doc Document) error {
	if !doc.Booking.WaiverSigned || strings.TrimSpace(doc.Booking.WaiverSignature) == "" {
		return booking.ErrSignatureRequired
	}
	img, err := RenderSignaturePNG(doc.Booking.WaiverSignature, rasterScale)
	if err != nil {
		return fmt.Errorf("render signature: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle(Title, false)
	pdf.AddPage()
	width, _ := pdf.GetPageSize()
	textW := width - 2*pageMargin

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(textW, 10, Title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range detailRows(doc) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(textW-35, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(textW, 4.5, Text, "", "L", false)
	pdf.Ln(6)

	info := pdf.RegisterImageOptionsReader(signatureName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img))
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("embed signature: %w", err)
	}
	sigW := signatureMaxW
	sigH := sigW * info.Height() / info.Width()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(textW, 6, "Signature", "", 1, "L", false, 0, "")
	y := pdf.GetY()
	pdf.ImageOptions(signatureName, pageMargin, y, sigW, sigH, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.SetDrawColor(180, 180, 180)
	pdf.Rect(pageMargin, y, sigW, sigH, "D")
	pdf.SetY(y + sigH + 2)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(textW, 5, "Signed "+doc.Booking.WaiverSignedAt.UTC().Format(time.RFC1123), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[waiver] exported booking %s", doc.Booking.ID)
	return nil
}

func detailRows(doc Document) [][2]string {
	classDate := doc.Booking.ClassDate
	if d, err := time.Parse("2006-01-02", classDate); err == nil {
		classDate = booking.FormatClassDate(doc.Class.SessionOn(d))
	}
	return [][2]string{
		{"Participant", doc.Participant},
		{"Email", doc.Email},
		{"Class", doc.Class.Name},
		{"Date", classDate},
		{"Location", doc.Class.Location + ", " + doc.Class.Address},
		{"Booking", doc.Booking.ID},
		{"Payment", string(doc.Booking.PaymentStatus)},
	}
}
