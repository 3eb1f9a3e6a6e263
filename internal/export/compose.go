package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/teraspora/multiple-canvases/internal/grid"
)

// Imager is a surface that can expose its pixels.
type Imager interface {
	Image() *image.RGBA
}

// Compose draws every cell's surface at its grid position on a w×h image
// filled with bg.
func Compose(cells []*grid.Cell, w, h int, bg color.Color) (*image.RGBA, error) {
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	for i, c := range cells {
		im, ok := c.Surface.(Imager)
		if !ok {
			return nil, fmt.Errorf("cell %d: surface %T has no image", i, c.Surface)
		}
		dc.DrawImage(im.Image(), c.X, c.Y)
	}
	return dc.Image().(*image.RGBA), nil
}

// SavePNG writes img as a PNG file.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}
