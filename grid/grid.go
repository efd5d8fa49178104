/*
Package grid resolves how many square tiles an image should be split into.

An image with an aspect ratio r is mapped to a grid of Width by Height tiles
such that Width/Height approximates r. Either side can be pinned by the
caller, in which case the other side is derived from the ratio. When neither
side is pinned the grid is one tile high (or wide) and the other side is
rounded from the ratio, unless a maximum tile bound is given, in which case
the closest rational approximation within that bound is used instead.
*/
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRatio is returned when the aspect ratio is zero, negative
	// or not a finite number
	ErrInvalidRatio = errors.New("grid: invalid aspect ratio")
	// ErrInvalidRequest is returned when a requested dimension is negative
	ErrInvalidRequest = errors.New("grid: invalid request")
)

// Grid is the number of tiles across and down
type Grid struct {
	Width  int
	Height int
}

// Count returns the total number of tiles in the grid
func (g Grid) Count() int {
	return g.Width * g.Height
}

// Valid reports whether both sides are at least one tile
func (g Grid) Valid() bool {
	return g.Width >= 1 && g.Height >= 1
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Request describes the caller's constraints on the grid. A zero value for
// any field means that it is chosen automatically.
type Request struct {
	Width    int
	Height   int
	MaxTiles int
}

// round rounds half up and never returns less than one
func round(x float64) int {
	n := int(math.Floor(x + 0.5))
	if n < 1 {
		return 1
	}
	return n
}

// Resolve computes the grid for an image with the given aspect ratio
// (width divided by height) subject to the constraints in req.
func Resolve(ratio float64, req Request) (Grid, error) {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return Grid{}, ErrInvalidRatio
	}
	if req.Width < 0 || req.Height < 0 || req.MaxTiles < 0 {
		return Grid{}, ErrInvalidRequest
	}

	switch {
	case req.Width > 0 && req.Height > 0:
		return Grid{req.Width, req.Height}, nil
	case req.Width > 0:
		return Grid{req.Width, round(float64(req.Width) / ratio)}, nil
	case req.Height > 0:
		return Grid{round(float64(req.Height) * ratio), req.Height}, nil
	case req.MaxTiles > 0:
		return BestFit(ratio, req.MaxTiles), nil
	case ratio >= 1:
		return Grid{round(ratio), 1}, nil
	default:
		return Grid{1, round(1 / ratio)}, nil
	}
}
