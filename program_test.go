package esolang

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewProgram_SamplesTopLeftPixel(t *testing.T) {
	img := getTestImage(3,
		[]Color{Red, Green},
		[]Color{Blue, K},
	)
	// Paint everything but the top-left pixel of the first codel white.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x != 0 || y != 0 {
				img.SetRGBA(x, y, getTestRGBA(White))
			}
		}
	}

	p, err := NewProgram(img, 3)
	require.Nil(t, err)
	require.Equal(t, 2, p.Width)
	require.Equal(t, 2, p.Height)
	require.Equal(t, Red, p.At(Position{0, 0}))
	require.Equal(t, Green, p.At(Position{1, 0}))
	require.Equal(t, Blue, p.At(Position{0, 1}))
	require.Equal(t, Black, p.At(Position{1, 1}))
}

func TestNewProgram_TruncatesPartialCodels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 5))
	p, err := NewProgram(img, 2)
	require.Nil(t, err)
	require.Equal(t, 3, p.Width)
	require.Equal(t, 2, p.Height)
}

func TestNewProgram_InvalidCodelSize(t *testing.T) {
	img := getTestImage(1, []Color{Red})
	for _, size := range []int{0, -1} {
		_, err := NewProgram(img, size)
		require.True(t, errors.Is(err, ErrCodelSize))
	}
}

func TestNewProgram_SmallerThanCodel(t *testing.T) {
	img := getTestImage(1, []Color{Red, Red})
	_, err := NewProgram(img, 4)
	require.True(t, errors.Is(err, ErrEmptyProgram))
}

func TestNewProgramFromColors_Ragged(t *testing.T) {
	_, err := NewProgramFromColors([][]Color{{Red, Red}, {Red}})
	require.NotNil(t, err)

	_, err = NewProgramFromColors(nil)
	require.True(t, errors.Is(err, ErrEmptyProgram))
}

func TestProgram_At(t *testing.T) {
	p := getTestProgram(t, []Color{Red, Green, Blue})
	require.True(t, p.Contains(Position{2, 0}))
	require.False(t, p.Contains(Position{3, 0}))
	require.False(t, p.Contains(Position{0, -1}))
	require.Equal(t, Unknown, p.At(Position{-1, 0}))
	require.Equal(t, 3, p.Size())
}

func TestLoadProgram(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, getTestImage(2,
		[]Color{LightRed, DarkCyan},
	))

	p, err := LoadProgram(path, 2)
	require.Nil(t, err)
	require.Equal(t, path, p.Path)
	require.Equal(t, 2, p.Width)
	require.Equal(t, 1, p.Height)
	require.Equal(t, LightRed, p.At(Position{0, 0}))
	require.Equal(t, DarkCyan, p.At(Position{1, 0}))
}

func TestLoadProgram_TransparentPixelKeepsRGB(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0xff, A: 0xff})

	p, err := LoadProgram(writeTestPNG(t, t.TempDir(), img), 1)
	require.Nil(t, err)
	require.Equal(t, White, p.At(Position{0, 0}))
	require.Equal(t, Red, p.At(Position{1, 0}))
}

func TestLoadProgram_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadProgram(filepath.Join(dir, "missing.png"), 1)
	require.True(t, errors.Is(err, ErrImageLoad))

	garbage := filepath.Join(dir, "garbage.png")
	require.Nil(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = LoadProgram(garbage, 1)
	require.True(t, errors.Is(err, ErrImageLoad))

	_, err = LoadProgram(garbage, 0)
	require.True(t, errors.Is(err, ErrCodelSize))
}
