package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

var ErrNoFrames = errors.New("export: no frames captured")

// GIF accumulates frames of an animation, quantised to the Plan 9 palette.
type GIF struct {
	// Delay per frame in 100ths of a second.
	Delay  int
	frames []*image.Paletted
}

func NewGIF(delay int) *GIF {
	return &GIF{Delay: delay}
}

func (g *GIF) AddFrame(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), img, b.Min)
	g.frames = append(g.frames, p)
}

func (g *GIF) Len() int { return len(g.frames) }

func (g *GIF) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIF) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
