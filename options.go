package emojitile

import (
	"errors"
	"fmt"

	"github.com/bodgit/emojitile/grid"
	"github.com/bodgit/emojitile/tile"
)

var (
	// ErrEmptyImage is returned for an image with no pixels
	ErrEmptyImage = tile.ErrEmptyImage
	// ErrInvalidOptions is returned when Options fails validation
	ErrInvalidOptions = errors.New("emojitile: invalid options")
)

// Options are the user selections for a conversion. The zero value trims the
// border, picks the grid automatically and uses the default tile unit.
type Options struct {
	// KeepBorder keeps any fully transparent border around the image
	KeepBorder bool
	// Width and Height are the number of tiles, zero picks automatically
	Width  int
	Height int
	// MaxTiles bounds the longer side when both Width and Height are
	// automatic, switching from simple rounding to a best-fit ratio
	MaxTiles int
	// BaseName is the prefix of each output file name
	BaseName string
	// Unit is the tile side in pixels, zero means tile.Unit
	Unit int
	// Colors limits each tile to a palette of that many colors, zero keeps
	// full color
	Colors int
}

// Validate checks the options are usable
func (o Options) Validate() error {
	switch {
	case o.Width < 0, o.Height < 0, o.MaxTiles < 0:
		return fmt.Errorf("%w: tile counts must not be negative", ErrInvalidOptions)
	case o.Unit < 0, o.Unit > tile.MaxCanvas:
		return fmt.Errorf("%w: unit must be between 1 and %d", ErrInvalidOptions, tile.MaxCanvas)
	case o.Width > tile.MaxCanvas/o.unit(), o.Height > tile.MaxCanvas/o.unit():
		return fmt.Errorf("%w: canvas must not exceed %dpx", ErrInvalidOptions, tile.MaxCanvas)
	case !tile.ValidColors(o.Colors):
		return fmt.Errorf("%w: colors must be 0 or between 2 and 256", ErrInvalidOptions)
	}
	return nil
}

func (o Options) unit() int {
	if o.Unit == 0 {
		return tile.Unit
	}
	return o.Unit
}

func (o Options) request() grid.Request {
	return grid.Request{
		Width:    o.Width,
		Height:   o.Height,
		MaxTiles: o.MaxTiles,
	}
}
