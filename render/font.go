package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
	}
}

// Label writes a line of text onto the image at the given position using
// the font settings
func Label(img *gocv.Mat, text string, pos image.Point, font Font) {
	gocv.PutTextWithParams(img, text, pos, font.Face, font.Scale,
		font.Color, font.Thickness, font.LineType, false)
}
