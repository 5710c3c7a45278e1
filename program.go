package esolang

import (
	"image"
)

// Program is the immutable codel grid an interpreter executes.
type Program struct {
	Path      string
	Width     int
	Height    int
	CodelSize int
	codels    []Color
}

// NewProgram samples img into a grid of codelSize-square codels, reading
// the top-left pixel of each codel.
func NewProgram(img image.Image, codelSize int) (*Program, error) {
	if codelSize < 1 {
		return nil, wrapError(ErrCodelSize, "Got %d", codelSize)
	}

	bounds := img.Bounds()
	width := bounds.Dx() / codelSize
	height := bounds.Dy() / codelSize
	if width == 0 || height == 0 {
		return nil, wrapError(ErrEmptyProgram, "Image %v, codel size %d", bounds.Size(), codelSize)
	}

	p := &Program{
		Width:     width,
		Height:    height,
		CodelSize: codelSize,
		codels:    make([]Color, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := img.At(bounds.Min.X+x*codelSize, bounds.Min.Y+y*codelSize)
			p.codels[y*width+x] = ClassifyColor(px)
		}
	}

	return p, nil
}

// NewProgramFromColors builds a grid directly from rows of colors. All rows
// must share the length of the first.
func NewProgramFromColors(rows [][]Color) (*Program, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyProgram
	}
	width, height := len(rows[0]), len(rows)
	p := &Program{
		Width:     width,
		Height:    height,
		CodelSize: 1,
		codels:    make([]Color, 0, width*height),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, newErrorf("Row %d has %d codels, want %d", y, len(row), width)
		}
		p.codels = append(p.codels, row...)
	}
	return p, nil
}

// LoadProgram decodes the image at path and samples it into a Program.
func LoadProgram(path string, codelSize int) (*Program, error) {
	if codelSize < 1 {
		return nil, wrapError(ErrCodelSize, "Got %d", codelSize)
	}

	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}

	p, err := NewProgram(img, codelSize)
	if err != nil {
		return nil, wrapError(err, "Load program %s", path)
	}
	p.Path = path
	return p, nil
}

func (m *Program) Contains(pos Position) bool {
	return pos.X >= 0 && pos.X < m.Width && pos.Y >= 0 && pos.Y < m.Height
}

// At returns the color at pos, or Unknown when pos is off the grid.
func (m *Program) At(pos Position) Color {
	if !m.Contains(pos) {
		return Unknown
	}
	return m.codels[m.index(pos)]
}

func (m *Program) Size() int {
	return m.Width * m.Height
}

func (m *Program) index(pos Position) int {
	return pos.Y*m.Width + pos.X
}
