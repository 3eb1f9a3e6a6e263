package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// label is text placed over the dots, starting at a character cell.
type label struct {
	col, row int
	text     string
	color    color.NRGBA
}

// Canvas is a grid of braille characters with one colour per character.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.NRGBA
	labels        []label
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.NRGBA, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.NRGBA, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Plot sets a pixel and colours its character.
func (c *Canvas) Plot(x, y int, clr color.NRGBA) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = clr
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	mask := ^rune(pixelMap[y%4][x%2])
	c.Grid[row][col] &= mask
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

func (c *Canvas) cell(x, y int) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return col, row, true
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = color.NRGBA{}
		}
	}
	c.labels = c.labels[:0]
}

// Label places text at a character cell; it is drawn over the dots until
// the cells beneath it are cleared.
func (c *Canvas) Label(col, row int, text string, clr color.NRGBA) {
	if row < 0 || row >= c.Height || col >= c.Width {
		return
	}
	c.labels = append(c.labels, label{col: col, row: row, text: text, color: clr})
}

// dropLabels removes labels starting inside the character rectangle.
func (c *Canvas) dropLabels(col0, row0, col1, row1 int) {
	kept := c.labels[:0]
	for _, l := range c.labels {
		if l.col >= col0 && l.col <= col1 && l.row >= row0 && l.row <= row1 {
			continue
		}
		kept = append(kept, l)
	}
	c.labels = kept
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, clr color.NRGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Plot(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// runes returns the character rows with labels applied.
func (c *Canvas) runes() ([][]rune, [][]color.NRGBA) {
	grid := make([][]rune, c.Height)
	colors := make([][]color.NRGBA, c.Height)
	for i := range c.Grid {
		grid[i] = append([]rune(nil), c.Grid[i]...)
		colors[i] = append([]color.NRGBA(nil), c.Colors[i]...)
	}
	for _, l := range c.labels {
		col := l.col
		for _, r := range l.text {
			if col >= c.Width {
				break
			}
			if col >= 0 {
				grid[l.row][col] = r
				colors[l.row][col] = l.color
			}
			col++
		}
	}
	return grid, colors
}

// String renders the canvas without colour.
func (c *Canvas) String() string {
	grid, _ := c.runes()
	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the canvas with each run of equally coloured characters
// in its own lipgloss style.
func (c *Canvas) Render() string {
	grid, colors := c.runes()
	var b strings.Builder
	for i, row := range grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && colors[i][j] == colors[i][start] {
				continue
			}
			b.WriteString(styleFor(colors[i][start]).Render(string(row[start:j])))
			start = j
		}
		if i < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func styleFor(c color.NRGBA) lipgloss.Style {
	if c.A == 0 {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(int(c.R), int(c.G), int(c.B))))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
