package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/juju/loggo"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/teraspora/multiple-canvases/internal/grid"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

var logger = loggo.GetLogger("canvasgrid.gui")

// hudHeight is the strip below the grid kept for the status line.
const hudHeight = 28

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	Grid *grid.Grid
	Font rl.Font
	quit bool
}

// initWindow opens a resizable window; escape is handled as a grid key
// rather than closing the window.
func initWindow(w, h, fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w), int32(h), "canvasgrid")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontFromMemory(".ttf", gomono.TTF, 32, nil)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp must be called after the window is open.
func NewApp(opts grid.Options) (*App, error) {
	a := &App{Font: loadFont()}
	g, err := grid.New(opts, func(w, h int) surface.Surface {
		return NewTextureSurface(w, h, a.Font)
	})
	if err != nil {
		return nil, err
	}
	a.Grid = g
	if err := a.resize(); err != nil {
		return nil, err
	}
	return a, nil
}

// Run opens a window and blocks until it is closed.
func Run(opts grid.Options, w, h, fps int) error {
	initWindow(w, h, fps)
	defer rl.CloseWindow()
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()
	return app.RunLoop()
}

func (a *App) RunLoop() error {
	for !a.quit && !rl.WindowShouldClose() {
		if err := a.Update(); err != nil {
			return err
		}
		a.Draw()
	}
	return nil
}

func (a *App) Close() {
	a.Grid.Close()
	rl.UnloadFont(a.Font)
}

func (a *App) resize() error {
	w, h := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())-hudHeight
	logger.Debugf("window area %dx%d", w, h)
	return a.Grid.Resize(w, max(h, 1))
}

// Update handles input and advances every live scene by one frame.
func (a *App) Update() error {
	if rl.IsWindowResized() {
		if err := a.resize(); err != nil {
			return err
		}
	}
	mods := modifiers()
	for _, name := range released() {
		action, err := a.Grid.Key(name, mods)
		if err != nil {
			return err
		}
		if action == grid.ActionQuit {
			a.quit = true
			return nil
		}
	}
	a.Grid.Tick()
	return nil
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	for _, c := range a.Grid.Cells() {
		ts, ok := c.Surface.(*TextureSurface)
		if !ok {
			continue
		}
		// Render textures are stored bottom-up.
		src := rl.NewRectangle(0, 0, float32(c.W), -float32(c.H))
		rl.DrawTextureRec(ts.Target.Texture, src, rl.NewVector2(float32(c.X), float32(c.Y)), rl.White)
	}
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	y := int(rl.GetScreenHeight()) - hudHeight + 6
	state := a.Grid.State()
	a.drawText("canvasgrid", 12, y, 16, ColSelect)

	status, col := "RUNNING", ColSelect
	if state.Paused {
		status, col = "PAUSED", ColText
	}
	labels := "off"
	if state.Labels {
		labels = "on"
	}
	a.drawText(fmt.Sprintf("%s  %dx%d  gen %d  labels %s", status, state.Digit, state.Digit, state.Generation, labels), 140, y, 16, col)
	a.drawText(fmt.Sprintf("[0-9] GRID  [L] LABELS  [SPACE] PAUSE  [Q] QUIT  %d FPS", rl.GetFPS()), int(rl.GetScreenWidth())-520, y, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
