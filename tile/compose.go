package tile

import (
	"image"
	"image/color"

	"github.com/bodgit/emojitile/grid"
	"github.com/disintegration/imaging"
)

// VisibleBounds returns the smallest rectangle containing every pixel that
// is not fully transparent. The second value is false if there are none.
func VisibleBounds(m *image.NRGBA) (image.Rectangle, bool) {
	b := m.Bounds()
	r := image.Rectangle{Min: b.Max, Max: b.Min}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y) + 3
		for x := b.Min.X; x < b.Max.X; x, i = x+1, i+4 {
			if m.Pix[i] == 0 {
				continue
			}
			found = true
			if x < r.Min.X {
				r.Min.X = x
			}
			if y < r.Min.Y {
				r.Min.Y = y
			}
			if x >= r.Max.X {
				r.Max.X = x + 1
			}
			if y >= r.Max.Y {
				r.Max.Y = y + 1
			}
		}
	}
	if !found {
		return image.Rectangle{}, false
	}
	return r, true
}

// IsEmpty reports whether m has no visible pixels
func IsEmpty(m *image.NRGBA) bool {
	_, ok := VisibleBounds(m)
	return !ok
}

// Trim crops m to its visible pixels. A fully transparent image is returned
// unchanged.
func Trim(m *image.NRGBA) *image.NRGBA {
	r, ok := VisibleBounds(m)
	if !ok || r == m.Bounds() {
		return m
	}
	return imaging.Crop(m, r)
}

// Fit shrinks m, preserving its aspect ratio, so that it fits within w by h.
// It never enlarges.
func Fit(m *image.NRGBA, w, h int) *image.NRGBA {
	return imaging.Fit(m, w, h, imaging.Lanczos)
}

// CanvasSize returns the pixel size of a grid of unit sized tiles. Grids
// larger than MaxCanvas on either side are rejected.
func CanvasSize(g grid.Grid, unit int) (image.Point, error) {
	if unit < 1 || unit > MaxCanvas || !g.Valid() || g.Width > MaxCanvas/unit || g.Height > MaxCanvas/unit {
		return image.Point{}, ErrInvalidOptions
	}
	return image.Pt(g.Width*unit, g.Height*unit), nil
}

// Offset returns the top-left position that centres an image of size inner
// within canvas. Odd differences round towards the top-left.
func Offset(canvas, inner image.Point) image.Point {
	return image.Pt((canvas.X-inner.X)/2, (canvas.Y-inner.Y)/2)
}

// Compose cuts m into the tiles described by opts.
func Compose(m image.Image, opts Options) (*Set, error) {
	size, err := CanvasSize(opts.Grid, opts.Unit)
	if err != nil {
		return nil, err
	}
	if m.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	src := imaging.Clone(m)
	if !opts.KeepBorder {
		src = Trim(src)
	}

	src = Fit(src, size.X, size.Y)

	canvas := imaging.New(size.X, size.Y, color.Transparent)
	canvas = imaging.Paste(canvas, src, Offset(size, src.Bounds().Size()))

	set := &Set{
		Grid: opts.Grid,
	}
	for j := 0; j < opts.Grid.Height; j++ {
		for i := 0; i < opts.Grid.Width; i++ {
			r := image.Rect(i*opts.Unit, j*opts.Unit, (i+1)*opts.Unit, (j+1)*opts.Unit)
			t := Tile{
				Row:   j,
				Col:   i,
				Image: imaging.Crop(canvas, r),
			}

			if t.Empty = IsEmpty(t.Image); t.Empty {
				set.Empty++
				if set.Empty > 1 {
					continue
				}
				t.Name = EmptyName(opts.BaseName)
			} else {
				set.NonEmpty++
				t.Name = Name(opts.BaseName, opts.Grid, j, i)
			}

			set.Tiles = append(set.Tiles, t)
		}
	}

	return set, nil
}
