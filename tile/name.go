package tile

import (
	"fmt"
	"strings"

	"github.com/bodgit/emojitile/grid"
)

// Name returns the file name for the non-empty tile at row, col. The row
// and column are only included for a grid with more than one tile in that
// direction.
func Name(base string, g grid.Grid, row, col int) string {
	var b strings.Builder
	b.WriteString(base)
	if g.Height > 1 {
		fmt.Fprintf(&b, "%s%d", nameSeparate, row+1)
	}
	if g.Width > 1 {
		fmt.Fprintf(&b, "%s%d", nameSeparate, col+1)
	}
	if b.Len() == 0 {
		b.WriteString(defaultName)
	}
	b.WriteString(ext)
	return b.String()
}

// EmptyName returns the file name for the empty placeholder tile
func EmptyName(base string) string {
	if base == "" {
		return emptyName + ext
	}
	return base + nameSeparate + emptyName + ext
}
