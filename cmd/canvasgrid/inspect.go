package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/teraspora/multiple-canvases/internal/config"
	"github.com/teraspora/multiple-canvases/internal/curve"
	"github.com/teraspora/multiple-canvases/internal/grid"
	"github.com/teraspora/multiple-canvases/internal/scene"
	"github.com/teraspora/multiple-canvases/internal/store"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

func listCurves(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tARITY\tPARAMS")
	for _, k := range curve.Kinds() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", k, k.Arity(), strings.Join(k.ParamNames(), ", "))
	}
	return w.Flush()
}

func traceCurve(cmd *cobra.Command, args []string) error {
	k, err := curve.Parse(args[0])
	if err != nil {
		return err
	}

	var params []float64
	if len(args) > 1 {
		for _, a := range args[1:] {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("parameter %q: %w", a, err)
			}
			params = append(params, v)
		}
	} else {
		s := seed
		if s == 0 {
			s = rand.Int63()
		}
		params = curve.RandomParams(k, rand.New(rand.NewSource(s)), float64(width))
	}

	xs := make([]float64, 0, frames+1)
	ys := make([]float64, 0, frames+1)
	ts := make([]float64, 0, frames+1)
	for i := 0; i <= frames; i++ {
		t := float64(i) * scene.DefaultStep
		p := k.Eval(params, t)
		ts = append(ts, t)
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	if csvOut {
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"t", "x", "y"}); err != nil {
			return err
		}
		for i := range ts {
			row := []string{
				strconv.FormatFloat(ts[i], 'f', 4, 64),
				strconv.FormatFloat(xs[i], 'f', 6, 64),
				strconv.FormatFloat(ys[i], 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	fmt.Printf("curve: %s\n", k)
	fmt.Printf("params: %v\n\n", params)
	for _, series := range []struct {
		name string
		data []float64
	}{{"x", xs}, {"y", ys}} {
		if !allFinite(series.data) {
			fmt.Printf("%s(t): not finite\n\n", series.name)
			continue
		}
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s(t), t in [0, %.2f]", series.name, ts[len(ts)-1])),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func allFinite(data []float64) bool {
	for _, v := range data {
		if !(curve.Point{X: v}).IsFinite() {
			return false
		}
	}
	return true
}

func runAtoms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, err := grid.New(gridOptions(cfg), func(w, h int) surface.Surface { return surface.NewRecorder(w, h) })
	if err != nil {
		return err
	}
	defer g.Close()

	sc, err := g.Build(grid.VariantAtoms, surface.NewRecorder(cfg.Window.Width, cfg.Window.Height))
	if err != nil {
		return err
	}
	as := sc.(*scene.AtomScene)

	links := make([]float64, 0, frames)
	for i := 0; i < frames; i++ {
		as.Update()
		links = append(links, float64(as.Links()))
	}

	d := as.Describe()
	fmt.Printf("atoms: %d on %dx%d, colour connections: %v\n\n", d.Atoms, d.Width, d.Height, d.ColourConnections)
	if len(links) == 0 {
		return nil
	}
	graph := asciigraph.Plot(links,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("links per frame"),
	)
	fmt.Println(graph)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIGIT\tATOMS\tLABELS\tCURVES")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		curves := "all"
		if len(cfg.Curves) > 0 {
			curves = strings.Join(cfg.Curves, ",")
		}
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%v\t%s\n", name, cfg.Digit, cfg.AtomProbability, cfg.Labels, curves)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDIGIT\tFRAMES\tSIZE\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%dx%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Digit,
			run.Frames,
			run.Width,
			run.Height,
			run.Seed,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	m, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := store.New(dataDir)
	m, err := st.Load(runID)
	if err != nil {
		return err
	}
	stats, err := st.LoadStats(runID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return fmt.Errorf("no data to plot")
	}

	links := make([]float64, len(stats))
	for i, s := range stats {
		links[i] = float64(s.Links)
	}
	fmt.Printf("run: %s\n", m.ID)
	fmt.Printf("frames: %d\n\n", len(stats))
	fmt.Println(asciigraph.Plot(links,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("atom links per frame"),
	))
	return nil
}
