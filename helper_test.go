package esolang

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/require"
)

// Shorthands for building programs in tests.
const (
	K = Black
	W = White
)

func getTestProgram(t require.TestingT, rows ...[]Color) *Program {
	p, err := NewProgramFromColors(rows)
	require.Nil(t, err)
	return p
}

func getTestRGBA(c Color) color.RGBA {
	for _, e := range palette {
		if e.Color == c {
			return color.RGBA{R: e.RGB.R, G: e.RGB.G, B: e.RGB.B, A: 0xff}
		}
	}
	return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
}

// getTestImage paints rows as codelSize-square blocks.
func getTestImage(codelSize int, rows ...[]Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0])*codelSize, len(rows)*codelSize))
	for y, row := range rows {
		for x, c := range row {
			for dy := 0; dy < codelSize; dy++ {
				for dx := 0; dx < codelSize; dx++ {
					img.SetRGBA(x*codelSize+dx, y*codelSize+dy, getTestRGBA(c))
				}
			}
		}
	}
	return img
}

func writeTestPNG(t require.TestingT, dir string, img image.Image) string {
	path := filepath.Join(dir, "program.png")
	f, err := os.Create(path)
	require.Nil(t, err)
	defer f.Close()

	err = png.Encode(f, img)
	require.Nil(t, err)
	return path
}
