package esolang

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is one of the 20 palette colors a codel can take, or Unknown.
type Color int

// The chromatic colors are laid out hue-major so that the hue index is
// c/3 and the lightness index is c%3.
const (
	LightRed Color = iota
	Red
	DarkRed
	LightYellow
	Yellow
	DarkYellow
	LightGreen
	Green
	DarkGreen
	LightCyan
	Cyan
	DarkCyan
	LightBlue
	Blue
	DarkBlue
	LightMagenta
	Magenta
	DarkMagenta
	White
	Black
	Unknown
)

const (
	hueCount       = 6
	lightnessCount = 3
	chromaticCount = hueCount * lightnessCount
)

var colorNames = [...]string{
	"LightRed", "Red", "DarkRed",
	"LightYellow", "Yellow", "DarkYellow",
	"LightGreen", "Green", "DarkGreen",
	"LightCyan", "Cyan", "DarkCyan",
	"LightBlue", "Blue", "DarkBlue",
	"LightMagenta", "Magenta", "DarkMagenta",
	"White", "Black", "Unknown",
}

type rgb struct {
	R, G, B uint8
}

type paletteEntry struct {
	Color Color
	RGB   rgb
}

// palette is in enumeration order; the nearest-color search relies on it
// to break ties in favour of the earlier entry.
var palette = []paletteEntry{
	mustPaletteEntry(LightRed, "#ffc0c0"),
	mustPaletteEntry(Red, "#ff0000"),
	mustPaletteEntry(DarkRed, "#c00000"),
	mustPaletteEntry(LightYellow, "#ffffc0"),
	mustPaletteEntry(Yellow, "#ffff00"),
	mustPaletteEntry(DarkYellow, "#c0c000"),
	mustPaletteEntry(LightGreen, "#c0ffc0"),
	mustPaletteEntry(Green, "#00ff00"),
	mustPaletteEntry(DarkGreen, "#00c000"),
	mustPaletteEntry(LightCyan, "#c0ffff"),
	mustPaletteEntry(Cyan, "#00ffff"),
	mustPaletteEntry(DarkCyan, "#00c0c0"),
	mustPaletteEntry(LightBlue, "#c0c0ff"),
	mustPaletteEntry(Blue, "#0000ff"),
	mustPaletteEntry(DarkBlue, "#0000c0"),
	mustPaletteEntry(LightMagenta, "#ffc0ff"),
	mustPaletteEntry(Magenta, "#ff00ff"),
	mustPaletteEntry(DarkMagenta, "#c000c0"),
	mustPaletteEntry(White, "#ffffff"),
	mustPaletteEntry(Black, "#000000"),
}

var paletteIndex = func() map[rgb]Color {
	m := make(map[rgb]Color, len(palette))
	for _, e := range palette {
		m[e.RGB] = e.Color
	}
	return m
}()

func mustPaletteEntry(c Color, hex string) paletteEntry {
	v, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	r, g, b := v.RGB255()
	return paletteEntry{Color: c, RGB: rgb{r, g, b}}
}

// Classify maps an RGB triple to its palette color. Colors off the palette
// snap to the nearest entry by Euclidean distance.
func Classify(r, g, b uint8) Color {
	v := rgb{r, g, b}
	if c, ok := paletteIndex[v]; ok {
		return c
	}

	closest := White
	minDistance := -1
	for _, e := range palette {
		d := distanceSquared(v, e.RGB)
		if minDistance < 0 || d < minDistance {
			minDistance = d
			closest = e.Color
		}
	}
	return closest
}

// ClassifyColor classifies any image color by its straight RGB. Alpha is
// dropped, so a transparent pixel keeps the color it stores.
func ClassifyColor(c color.Color) Color {
	v := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Classify(v.R, v.G, v.B)
}

func distanceSquared(a, b rgb) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return colorNames[Unknown]
	}
	return colorNames[c]
}

// IsChromatic reports whether the color carries a hue and a lightness.
func (c Color) IsChromatic() bool {
	return c >= 0 && c < chromaticCount
}

// Hue returns the cyclic hue index 0..5, or -1 for black, white and unknown.
func (c Color) Hue() int {
	if !c.IsChromatic() {
		return -1
	}
	return int(c) / lightnessCount
}

// Lightness returns 0 (light), 1 (normal) or 2 (dark), or -1 for black,
// white and unknown.
func (c Color) Lightness() int {
	if !c.IsChromatic() {
		return -1
	}
	return int(c) % lightnessCount
}

// Hex returns the canonical palette value as "#rrggbb", or "" for Unknown.
func (c Color) Hex() string {
	for _, e := range palette {
		if e.Color == c {
			return colorful.Color{
				R: float64(e.RGB.R) / 255,
				G: float64(e.RGB.G) / 255,
				B: float64(e.RGB.B) / 255,
			}.Hex()
		}
	}
	return ""
}
