package render

import "image/color"

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 56, B: 56, A: 255}
	Yellow = color.RGBA{R: 255, G: 178, B: 29, A: 255}
	Blue   = color.RGBA{R: 0, G: 194, B: 255, A: 255}

	// paletteColors is a list of distinct colors used to paint box sets
	// that need telling apart, such as one color per IoU threshold
	paletteColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},   // #FF3838
		{R: 255, G: 178, B: 29, A: 255},  // #FFB21D
		{R: 72, G: 249, B: 10, A: 255},   // #48F90A
		{R: 0, G: 212, B: 187, A: 255},   // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},   // #00C2FF
		{R: 100, G: 115, B: 255, A: 255}, // #6473FF
		{R: 132, G: 56, B: 255, A: 255},  // #8438FF
		{R: 255, G: 55, B: 199, A: 255},  // #FF37C7
	}
)

// PaletteColor returns a distinct color for the given index, wrapping
// around when the palette is exhausted
func PaletteColor(i int) color.RGBA {
	return paletteColors[i%len(paletteColors)]
}
