package waiver

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"dancebook/internal/signature"
)

const maxRasterSide = 4096

// RenderSignature rasterizes a stored signature, in either encoding, onto a
// white background. scale multiplies the document's own size.
func RenderSignature(sig string, scale float64) (*image.RGBA, error) {
	markup, err := signature.Decode(sig)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse signature: %w", err)
	}
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(icon.ViewBox.W * scale))
	h := int(math.Ceil(icon.ViewBox.H * scale))
	if w <= 0 || h <= 0 || w > maxRasterSide || h > maxRasterSide {
		return nil, fmt.Errorf("signature size %dx%d out of range", w, h)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// RenderSignaturePNG is RenderSignature encoded as PNG.
func RenderSignaturePNG(sig string, scale float64) ([]byte, error) {
	img, err := RenderSignature(sig, scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
