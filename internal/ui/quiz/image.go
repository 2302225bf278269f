package quiz

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"examtrainer/internal/assets"
)

// imageScale shrinks images to a third of their natural size.
const imageScale = 3

// asciiRamp orders characters from light to dark for colorless output.
const asciiRamp = " .:-=+*#%@"

// imageCells returns the cell grid for an image. Each cell covers two pixel rows.
func imageCells(img assets.Image, maxCols int) (cols, rows int) {
	cols = max(img.Width/imageScale, 1)
	height := max(img.Height/imageScale, 1)
	if maxCols > 0 && cols > maxCols {
		height = max(height*maxCols/cols, 1)
		cols = maxCols
	}
	rows = (height + 1) / 2
	return cols, rows
}

// renderImage draws img with upper half blocks, foreground for the top pixel and
// background for the bottom pixel of each cell.
func renderImage(img assets.Image, maxCols int, noColor bool) string {
	if img.Pixels == nil || img.Width == 0 || img.Height == 0 {
		return ""
	}
	cols, rows := imageCells(img, maxCols)
	bounds := img.Pixels.Bounds()
	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			x := bounds.Min.X + col*img.Width/cols
			top := sample(img.Pixels, x, bounds.Min.Y+(2*row)*img.Height/(2*rows))
			bottom := sample(img.Pixels, x, bounds.Min.Y+(2*row+1)*img.Height/(2*rows))
			if noColor {
				b.WriteByte(asciiRamp[shade(top, bottom)])
				continue
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom))).
				Render("▀"))
		}
	}
	return b.String()
}

// sample returns the pixel at (x, y) composited over white.
func sample(pixels image.Image, x, y int) color.RGBA {
	r, g, b, a := pixels.At(x, y).RGBA()
	over := 0xffff - a
	return color.RGBA{
		R: uint8((r + over) >> 8),
		G: uint8((g + over) >> 8),
		B: uint8((b + over) >> 8),
		A: 0xff,
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// shade maps the mean luminance of two pixels to an index into asciiRamp.
func shade(top, bottom color.RGBA) int {
	lum := (luminance(top) + luminance(bottom)) / 2
	index := int((255 - lum) * float64(len(asciiRamp)-1) / 255)
	return min(max(index, 0), len(asciiRamp)-1)
}

func luminance(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}
