package tile

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/bodgit/emojitile/grid"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opaque = color.NRGBA{0xff, 0x00, 0x00, 0xff}

func filled(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

func TestVisibleBounds(t *testing.T) {
	m := filled(10, 8, color.Transparent)
	_, ok := VisibleBounds(m)
	assert.False(t, ok)
	assert.True(t, IsEmpty(m))

	m.SetNRGBA(2, 3, opaque)
	m.SetNRGBA(6, 5, color.NRGBA{0, 0, 0, 1})
	r, ok := VisibleBounds(m)
	require.True(t, ok)
	assert.Equal(t, image.Rect(2, 3, 7, 6), r)
	assert.False(t, IsEmpty(m))
}

func TestTrim(t *testing.T) {
	m := filled(10, 8, color.Transparent)
	m.SetNRGBA(2, 3, opaque)
	m.SetNRGBA(6, 5, opaque)

	trimmed := Trim(m)
	assert.Equal(t, image.Rect(0, 0, 5, 3), trimmed.Bounds())
	assert.Equal(t, opaque, trimmed.NRGBAAt(0, 0))
	assert.Equal(t, opaque, trimmed.NRGBAAt(4, 2))

	// Source is left untouched
	assert.Equal(t, image.Rect(0, 0, 10, 8), m.Bounds())

	// Fully transparent images are not trimmed
	empty := filled(10, 8, color.Transparent)
	assert.Equal(t, empty.Bounds(), Trim(empty).Bounds())
}

func TestFit(t *testing.T) {
	tables := []struct {
		name         string
		w, h         int
		tw, th       int
		wantW, wantH int
	}{
		{"fits", 100, 50, 256, 128, 100, 50},
		{"exact", 256, 128, 256, 128, 256, 128},
		{"wide", 512, 128, 256, 128, 256, 64},
		{"tall", 100, 400, 256, 128, 32, 128},
		{"sliver", 10000, 1, 128, 128, 128, 1},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			m := Fit(filled(table.w, table.h, opaque), table.tw, table.th)
			assert.Equal(t, table.wantW, m.Bounds().Dx())
			assert.Equal(t, table.wantH, m.Bounds().Dy())
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, image.Pt(28, 14), Offset(image.Pt(256, 128), image.Pt(200, 100)))
	assert.Equal(t, image.Pt(0, 0), Offset(image.Pt(128, 128), image.Pt(128, 128)))
	assert.Equal(t, image.Pt(1, 2), Offset(image.Pt(128, 128), image.Pt(125, 123)))
}

func TestName(t *testing.T) {
	tables := []struct {
		base     string
		g        grid.Grid
		row, col int
		want     string
	}{
		{"cat", grid.Grid{Width: 1, Height: 1}, 0, 0, "cat.png"},
		{"cat", grid.Grid{Width: 2, Height: 1}, 0, 1, "cat_2.png"},
		{"cat", grid.Grid{Width: 1, Height: 3}, 2, 0, "cat_3.png"},
		{"cat", grid.Grid{Width: 2, Height: 2}, 1, 0, "cat_2_1.png"},
		{"", grid.Grid{Width: 1, Height: 1}, 0, 0, "output.png"},
		{"", grid.Grid{Width: 2, Height: 1}, 0, 0, "_1.png"},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Name(table.base, table.g, table.row, table.col))
	}

	assert.Equal(t, "cat_empty.png", EmptyName("cat"))
	assert.Equal(t, "empty.png", EmptyName(""))
}

func TestCompose(t *testing.T) {
	set, err := Compose(filled(256, 128, opaque), Options{
		Grid:     grid.Grid{Width: 2, Height: 1},
		Unit:     Unit,
		BaseName: "wide",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, set.NonEmpty)
	assert.Equal(t, 0, set.Empty)
	require.Len(t, set.Tiles, 2)
	assert.Equal(t, "wide_1.png", set.Tiles[0].Name)
	assert.Equal(t, "wide_2.png", set.Tiles[1].Name)
	for _, tile := range set.Tiles {
		assert.False(t, tile.Empty)
		assert.Equal(t, image.Rect(0, 0, Unit, Unit), tile.Image.Bounds())
		assert.Equal(t, opaque, tile.Image.NRGBAAt(0, 0))
	}
}

func TestComposeTransparent(t *testing.T) {
	set, err := Compose(filled(128, 128, color.Transparent), Options{
		KeepBorder: true,
		Grid:       grid.Grid{Width: 1, Height: 1},
		Unit:       Unit,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, set.NonEmpty)
	assert.Equal(t, 1, set.Empty)
	require.Len(t, set.Tiles, 1)
	assert.True(t, set.Tiles[0].Empty)
	assert.Equal(t, "empty.png", set.Tiles[0].Name)
}

func TestComposeDeduplicatesEmpty(t *testing.T) {
	// A small dot in the middle of a 3x3 grid leaves eight empty tiles
	m := filled(384, 384, color.Transparent)
	for y := 180; y < 200; y++ {
		for x := 180; x < 200; x++ {
			m.SetNRGBA(x, y, opaque)
		}
	}

	set, err := Compose(m, Options{
		KeepBorder: true,
		Grid:       grid.Grid{Width: 3, Height: 3},
		Unit:       Unit,
		BaseName:   "dot",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, set.NonEmpty)
	assert.Equal(t, 8, set.Empty)
	require.Len(t, set.Tiles, 2)

	// Row-major order puts the first empty tile at (0, 0)
	assert.Equal(t, "dot_empty.png", set.Tiles[0].Name)
	assert.Equal(t, 0, set.Tiles[0].Row)
	assert.Equal(t, 0, set.Tiles[0].Col)
	assert.Equal(t, "dot_2_2.png", set.Tiles[1].Name)

	empties := 0
	for _, tile := range set.Tiles {
		if strings.HasSuffix(tile.Name, "empty.png") {
			empties++
		}
	}
	assert.Equal(t, 1, empties)
	assert.Equal(t, set.NonEmpty+1, len(set.Tiles))
}

func TestComposeTrimsAndCentres(t *testing.T) {
	// 200x100 of content surrounded by a transparent border
	m := filled(300, 300, color.Transparent)
	for y := 50; y < 150; y++ {
		for x := 20; x < 220; x++ {
			m.SetNRGBA(x, y, opaque)
		}
	}

	set, err := Compose(m, Options{
		Grid: grid.Grid{Width: 2, Height: 1},
		Unit: Unit,
	})
	require.NoError(t, err)
	require.Len(t, set.Tiles, 2)

	// Content is pasted at (28, 14) on the 256x128 canvas
	left := set.Tiles[0].Image
	assert.Equal(t, uint8(0), left.NRGBAAt(27, 64).A)
	assert.Equal(t, opaque, left.NRGBAAt(28, 14))
	assert.Equal(t, uint8(0), left.NRGBAAt(64, 13).A)
	assert.Equal(t, opaque, left.NRGBAAt(64, 113))
	assert.Equal(t, uint8(0), left.NRGBAAt(64, 114).A)

	right := set.Tiles[1].Image
	assert.Equal(t, opaque, right.NRGBAAt(99, 64))
	assert.Equal(t, uint8(0), right.NRGBAAt(100, 64).A)
}

func TestComposeErrors(t *testing.T) {
	m := filled(10, 10, opaque)

	_, err := Compose(m, Options{Grid: grid.Grid{Width: 1, Height: 1}})
	assert.Equal(t, ErrInvalidOptions, err)

	_, err = Compose(m, Options{Grid: grid.Grid{Width: 0, Height: 1}, Unit: Unit})
	assert.Equal(t, ErrInvalidOptions, err)

	_, err = Compose(&image.NRGBA{}, Options{Grid: grid.Grid{Width: 1, Height: 1}, Unit: Unit})
	assert.Equal(t, ErrEmptyImage, err)
}

func TestCanvasSize(t *testing.T) {
	size, err := CanvasSize(grid.Grid{Width: 3, Height: 2}, Unit)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(384, 256), size)

	size, err = CanvasSize(grid.Grid{Width: 1, Height: 128}, Unit)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(Unit, MaxCanvas), size)

	tables := []struct {
		g    grid.Grid
		unit int
	}{
		{grid.Grid{Width: 1, Height: 1}, 0},
		{grid.Grid{Width: 1, Height: 1}, MaxCanvas + 1},
		{grid.Grid{Width: 0, Height: 1}, Unit},
		{grid.Grid{Width: 129, Height: 1}, Unit},
		{grid.Grid{Width: 1, Height: 1 << 40}, Unit},
		{grid.Grid{Width: 1 << 62, Height: 1}, 4},
	}
	for _, table := range tables {
		_, err := CanvasSize(table.g, table.unit)
		assert.Equal(t, ErrInvalidOptions, err, "%v at %d", table.g, table.unit)
	}
}

func TestComposeTooLarge(t *testing.T) {
	_, err := Compose(filled(10, 10, opaque), Options{
		Grid: grid.Grid{Width: 1 << 40, Height: 1},
		Unit: Unit,
	})
	assert.Equal(t, ErrInvalidOptions, err)
}
