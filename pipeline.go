package emojitile

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/bodgit/emojitile/grid"
	"github.com/bodgit/emojitile/tile"
	"github.com/disintegration/imaging"
)

// Load decodes the image in file and converts it to NRGBA
func Load(file string) (*image.NRGBA, error) {
	m, err := imaging.Open(file)
	if err != nil {
		return nil, err
	}
	if m.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return imaging.Clone(m), nil
}

// plan trims m as requested and resolves its grid, returning the trimmed
// image alongside the plan
func (c *Converter) plan(m image.Image, opts Options) (*Plan, *image.NRGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	if m.Bounds().Empty() {
		return nil, nil, ErrEmptyImage
	}

	src := imaging.Clone(m)
	if !opts.KeepBorder {
		src = tile.Trim(src)
	}

	size := src.Bounds().Size()
	g, err := grid.Resolve(float64(size.X)/float64(size.Y), opts.request())
	if err != nil {
		return nil, nil, err
	}
	if _, err := tile.CanvasSize(g, opts.unit()); err != nil {
		return nil, nil, fmt.Errorf("%w: %s grid of %dpx tiles is too large", ErrInvalidOptions, g, opts.unit())
	}

	return &Plan{
		Size: size,
		Grid: g,
	}, src, nil
}

// Plan works out the grid for m using opts.
func (c *Converter) Plan(m image.Image, opts Options) (*Plan, error) {
	p, _, err := c.plan(m, opts)
	return p, err
}

// Compose plans and cuts m into tiles.
func (c *Converter) Compose(m image.Image, opts Options) (*Plan, *tile.Set, error) {
	p, src, err := c.plan(m, opts)
	if err != nil {
		return nil, nil, err
	}
	if size := m.Bounds().Size(); size != p.Size {
		c.logger.Printf("Trimmed border from %v to %v\n", size, p.Size)
	}

	// src is already trimmed
	set, err := tile.Compose(src, tile.Options{
		KeepBorder: true,
		Grid:       p.Grid,
		Unit:       opts.unit(),
		BaseName:   opts.BaseName,
	})
	if err != nil {
		return nil, nil, err
	}
	if set.NonEmpty == 0 {
		c.logger.Println("Image is fully transparent")
	}

	return p, set, nil
}

func writeTile(file string, t tile.Tile, colors int) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tile.Encode(f, t.Image, colors); err != nil {
		return err
	}

	return f.Close()
}

// Write writes every tile in set to dir. The returned Summary always
// reflects the files that were written.
func (c *Converter) Write(set *tile.Set, dir string, colors int) (*Summary, error) {
	s := &Summary{
		Grid:     set.Grid,
		NonEmpty: set.NonEmpty,
		Empty:    set.Empty,
		Planned:  len(set.Tiles),
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return s, err
	}

	for _, t := range set.Tiles {
		file := filepath.Join(dir, t.Name)
		if err := writeTile(file, t, colors); err != nil {
			return s, fmt.Errorf("writing %s: %w", t.Name, err)
		}
		s.Written = append(s.Written, t.Name)
		c.logger.Printf("Wrote \"%s\"\n", file)
	}

	return s, nil
}

// Convert reads the image in file and writes its tiles to dir.
func (c *Converter) Convert(file, dir string, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m, err := Load(file)
	if err != nil {
		return nil, err
	}

	p, set, err := c.Compose(m, opts)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("Tiling %s as %s\n", file, p.Grid)

	return c.Write(set, dir, opts.Colors)
}
