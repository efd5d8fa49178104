package emojitile

import (
	"errors"
	"image"
)

const noImage = "No image loaded"

var errNoImage = errors.New("emojitile: no image loaded")

// Session holds the current selections of an interactive front end. Every
// change re-renders the info text and passes it to the change callback.
type Session struct {
	c        *Converter
	opts     Options
	image    image.Image
	onChange func(string)
}

// NewSession returns a Session starting from opts. onChange may be nil.
func NewSession(c *Converter, opts Options, onChange func(string)) *Session {
	return &Session{
		c:        c,
		opts:     opts,
		onChange: onChange,
	}
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange(s.Info())
	}
}

// Options returns a copy of the current selections
func (s *Session) Options() Options {
	return s.opts
}

// Load replaces the current image with the one in file
func (s *Session) Load(file string) error {
	m, err := Load(file)
	if err != nil {
		return err
	}
	s.SetImage(m)
	return nil
}

// SetImage replaces the current image
func (s *Session) SetImage(m image.Image) {
	s.image = m
	s.changed()
}

// SetKeepBorder toggles border trimming
func (s *Session) SetKeepBorder(keep bool) {
	s.opts.KeepBorder = keep
	s.changed()
}

// SetSize sets the requested tile counts, zero means automatic
func (s *Session) SetSize(width, height int) {
	s.opts.Width, s.opts.Height = width, height
	s.changed()
}

// SetMaxTiles sets the bound used by the best-fit grid
func (s *Session) SetMaxTiles(max int) {
	s.opts.MaxTiles = max
	s.changed()
}

// SetBaseName sets the output file name prefix
func (s *Session) SetBaseName(name string) {
	s.opts.BaseName = name
	s.changed()
}

// Info describes how the current image would be tiled
func (s *Session) Info() string {
	if s.image == nil {
		return noImage
	}
	p, err := s.c.Plan(s.image, s.opts)
	if err != nil {
		return err.Error()
	}
	return p.String()
}

// Run converts the current image, writing the tiles to dir
func (s *Session) Run(dir string) (*Summary, error) {
	if s.image == nil {
		return nil, errNoImage
	}
	_, set, err := s.c.Compose(s.image, s.opts)
	if err != nil {
		return nil, err
	}
	return s.c.Write(set, dir, s.opts.Colors)
}
