/*
Package tile implements the compositor that cuts an image into square
custom emoji tiles.

The image is optionally trimmed to its visible content, shrunk to fit a
canvas of Width by Height tiles, centred on that transparent canvas and then
cut into Unit by Unit tiles in row-major order. Tiles with no visible pixels
are collapsed so that at most one empty placeholder tile is ever produced.
*/
package tile

import (
	"errors"
	"image"

	"github.com/bodgit/emojitile/grid"
)

const (
	// Unit is the default side length in pixels of each tile
	Unit = 128
	// MaxCanvas is the largest canvas side in pixels
	MaxCanvas = 1 << 14
)

const (
	ext          = ".png"
	defaultName  = "output"
	emptyName    = "empty"
	nameSeparate = "_"
)

var (
	// ErrEmptyImage is returned when the source image has no pixels
	ErrEmptyImage = errors.New("tile: image has no pixels")
	// ErrInvalidOptions is returned for a non-positive unit or grid, or
	// a canvas larger than MaxCanvas
	ErrInvalidOptions = errors.New("tile: invalid options")
)

// Options controls how an image is composed into tiles.
type Options struct {
	// KeepBorder disables trimming of the transparent border
	KeepBorder bool
	Grid       grid.Grid
	// Unit is the tile side length in pixels
	Unit int
	// BaseName is prefixed to every tile file name
	BaseName string
}

// Tile is a single cell of the grid.
type Tile struct {
	Name  string
	Row   int
	Col   int
	Empty bool
	Image *image.NRGBA
}

// Set is the ordered result of composing an image. Tiles holds every
// non-empty tile and at most one empty tile, in row-major order.
type Set struct {
	Grid     grid.Grid
	Tiles    []Tile
	NonEmpty int
	Empty    int
}
