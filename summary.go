package emojitile

import (
	"fmt"
	"image"
	"strings"

	"github.com/bodgit/emojitile/grid"
)

// Plan describes how an image will be tiled without producing any tiles.
type Plan struct {
	// Size is the image size after any border trimming
	Size image.Point
	Grid grid.Grid
}

func (p *Plan) String() string {
	return fmt.Sprintf("Image size: %dx%d\nTile dimension: %d %d\nTile count: %d",
		p.Size.X, p.Size.Y, p.Grid.Width, p.Grid.Height, p.Grid.Count())
}

// Summary is the outcome of a conversion.
type Summary struct {
	Grid     grid.Grid
	NonEmpty int
	Empty    int
	// Written lists the files written, in order, even if the conversion
	// failed part way through
	Written []string
	// Planned is the number of files the conversion set out to write
	Planned int
}

func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, "tile dimension:", s.Grid.Width, s.Grid.Height)
	fmt.Fprintln(&b, "tile count:", s.Grid.Count())
	fmt.Fprintln(&b, "non-empty tile count:", s.NonEmpty)
	fmt.Fprintln(&b, "empty tile count:", s.Empty)
	fmt.Fprintf(&b, "written file count: %d of %d", len(s.Written), s.Planned)
	return b.String()
}
