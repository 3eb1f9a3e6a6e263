package play

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/juju/loggo"
	"golang.org/x/image/font/basicfont"

	"github.com/teraspora/multiple-canvases/internal/grid"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

var logger = loggo.GetLogger("canvasgrid.play")

const hudHeight = 20

var (
	colBg  = color.RGBA{10, 10, 10, 255}
	colHUD = color.RGBA{140, 140, 140, 255}
)

// Game drives a grid from ebiten's update loop. The grid is rebuilt
// whenever the outside size changes.
type Game struct {
	grid *grid.Grid

	w, h     int
	pendingW int
	pendingH int
	keys     []ebiten.Key
}

func NewGame(opts grid.Options) (*Game, error) {
	g, err := grid.New(opts, func(w, h int) surface.Surface {
		return NewImageSurface(w, h)
	})
	if err != nil {
		return nil, err
	}
	return &Game{grid: g}, nil
}

func (g *Game) Grid() *grid.Grid { return g.grid }

func (g *Game) Update() error {
	if g.pendingW != g.w || g.pendingH != g.h {
		g.w, g.h = g.pendingW, g.pendingH
		logger.Debugf("layout %dx%d", g.w, g.h)
		if err := g.grid.Resize(g.w, max(g.h-hudHeight, 1)); err != nil {
			return err
		}
	}

	mods := modifiers()
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		name, ok := keyName(k)
		if !ok {
			continue
		}
		action, err := g.grid.Key(name, mods)
		if err != nil {
			return err
		}
		if action == grid.ActionQuit {
			return ebiten.Termination
		}
	}

	g.grid.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)
	for _, c := range g.grid.Cells() {
		is, ok := c.Surface.(*ImageSurface)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(c.X), float64(c.Y))
		screen.DrawImage(is.Image, op)
	}

	state := g.grid.State()
	status := "RUNNING"
	if state.Paused {
		status = "PAUSED"
	}
	hud := fmt.Sprintf("canvasgrid  %s  %dx%d  gen %d  [0-9] grid [l] labels [space] pause", status, state.Digit, state.Digit, state.Generation)
	text.Draw(screen, hud, basicfont.Face7x13, 8, g.h-6, colHUD)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the game window and blocks until it is closed.
func Run(opts grid.Options, w, h, fps int) error {
	game, err := NewGame(opts)
	if err != nil {
		return err
	}
	defer game.grid.Close()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("canvasgrid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
