package tile

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const (
	minColors = 2
	maxColors = 256
)

var errBadColors = errors.New("tile: colors must be 0 or between 2 and 256")

// ValidColors reports whether colors is an acceptable palette size for
// Encode. Zero means no quantization.
func ValidColors(colors int) bool {
	return colors == 0 || (colors >= minColors && colors <= maxColors)
}

func quantizeImage(m image.Image, colors int) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{AddTransparent: true}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}
	return pm
}

// Encode writes the Image m to w as a PNG. If colors is non-zero the image
// is first reduced to a palette of at most that many colors.
func Encode(w io.Writer, m image.Image, colors int) error {
	if !ValidColors(colors) {
		return errBadColors
	}
	if colors == 0 {
		return png.Encode(w, m)
	}
	e := png.Encoder{CompressionLevel: png.BestCompression}
	return e.Encode(w, quantizeImage(m, colors))
}
