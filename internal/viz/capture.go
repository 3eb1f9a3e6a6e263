package viz

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	charW = 8
	charH = 16
)

// capture rasterises every cell's braille dots into one image, each dot a
// charW/2 × charH/4 block in its character's colour.
func (m Model) capture() *image.RGBA {
	d := m.grid.Columns()
	cells := m.grid.Cells()
	if d == 0 || len(cells) == 0 {
		return image.NewRGBA(image.Rect(0, 0, charW, charH))
	}
	first, ok := cells[0].Surface.(*Surface)
	if !ok {
		return image.NewRGBA(image.Rect(0, 0, charW, charH))
	}
	cw, ch := (first.Width+1)*charW, first.Height*charH
	img := image.NewRGBA(image.Rect(0, 0, d*cw, d*ch))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	for _, c := range cells {
		cv, ok := c.Surface.(*Surface)
		if !ok {
			continue
		}
		rasterise(img, cv.Canvas, c.Col*cw, c.Row*ch)
	}
	return img
}

func rasterise(img *image.RGBA, c *Canvas, ox, oy int) {
	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= blank {
				continue
			}
			pattern := int(r - blank)
			clr := c.Colors[row][col]
			if clr.A == 0 {
				clr = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			baseX, baseY := ox+col*charW, oy+row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					rect := image.Rect(baseX+dx*dotW, baseY+dy*dotH, baseX+(dx+1)*dotW, baseY+(dy+1)*dotH)
					draw.Draw(img, rect, &image.Uniform{clr}, image.Point{}, draw.Src)
				}
			}
		}
	}
}
