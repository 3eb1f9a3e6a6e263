package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/teraspora/multiple-canvases/internal/export"
	"github.com/teraspora/multiple-canvases/internal/grid"
	"github.com/teraspora/multiple-canvases/internal/store"
	"github.com/teraspora/multiple-canvases/internal/surface"
	"github.com/teraspora/multiple-canvases/internal/surface/raster"
)

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if every < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", every)
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, dir, err := st.Create(cfg.Digit)
	if err != nil {
		return err
	}

	g, err := grid.New(gridOptions(cfg), func(w, h int) surface.Surface { return raster.New(w, h) })
	if err != nil {
		return err
	}
	defer g.Close()
	w, h := cfg.Window.Width, cfg.Window.Height
	if err := g.Resize(w, h); err != nil {
		return err
	}

	anim := export.NewGIF(cfg.Export.Delay)
	stats, err := export.Animate(g, cfg.Export.Frames, runtime.NumCPU(), func(frame int) error {
		if frame%every != 0 {
			return nil
		}
		img, err := export.Compose(g.Cells(), w, h, surface.Black)
		if err != nil {
			return err
		}
		anim.AddFrame(img)
		return nil
	})
	if err != nil {
		return err
	}

	gifFile := filepath.Join(dir, "grid.gif")
	if err := anim.Save(gifFile); err != nil {
		return fmt.Errorf("writing gif: %w", err)
	}
	final, err := export.Compose(g.Cells(), w, h, surface.Black)
	if err != nil {
		return err
	}
	pngFile := filepath.Join(dir, "grid.png")
	if err := export.SavePNG(pngFile, final); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}

	m := &store.Manifest{
		ID:     runID,
		Seed:   cfg.Seed,
		Digit:  cfg.Digit,
		Frames: cfg.Export.Frames,
		Width:  w,
		Height: h,
		Files:  []string{"grid.gif", "grid.png"},
		Scenes: g.Describe(),
	}
	if err := st.Save(m, stats); err != nil {
		return err
	}
	logger.Infof("rendered %d frames (%d captured) to %s", cfg.Export.Frames, anim.Len(), dir)
	fmt.Printf("run: %s\n", runID)
	fmt.Printf("gif: %s\n", gifFile)
	fmt.Printf("png: %s\n", pngFile)
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g, err := grid.New(gridOptions(cfg), func(w, h int) surface.Surface { return surface.NewRecorder(w, h) })
	if err != nil {
		return err
	}
	defer g.Close()
	w, h := cfg.Window.Width, cfg.Window.Height
	if err := g.Resize(w, h); err != nil {
		return err
	}
	if _, err := export.Animate(g, cfg.Export.Frames, runtime.NumCPU(), nil); err != nil {
		return err
	}

	cells := make([]export.SVGCell, 0, len(g.Cells()))
	for _, c := range g.Cells() {
		cells = append(cells, export.SVGCell{X: c.X, Y: c.Y, Rec: c.Surface.(*surface.Recorder)})
	}

	var out io.Writer = os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := export.WriteSVG(out, w, h, surface.Black, cells); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	if outPath != "-" {
		logger.Infof("wrote %d cells to %s", len(cells), outPath)
	}
	return nil
}
