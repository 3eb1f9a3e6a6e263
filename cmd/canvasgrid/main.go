package main

import (
	"fmt"
	"os"

	"github.com/juju/loggo"
	"github.com/spf13/cobra"

	"github.com/teraspora/multiple-canvases/internal/gui"
	"github.com/teraspora/multiple-canvases/internal/viz"
)

var logger = loggo.GetLogger("canvasgrid")

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string

	digit           int
	seed            int64
	atomProbability float64
	labels          bool
	curves          []string
	fps             int
	width           int
	height          int
	debug           bool

	frames  int
	every   int
	delay   int
	outPath string
	csvOut  bool
	gifPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "canvasgrid",
		Short:         "grid of animated curves and atoms",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.Name() == "tui")
		},
		RunE: runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".canvasgrid", "data directory for rendered runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "<root>=INFO", "loggo logging config, e.g. <root>=DEBUG")
	pf.StringVar(&logFile, "log-file", "", "also write logs to this file")
	pf.IntVarP(&digit, "digit", "d", 4, "grid side; the grid holds digit² cells")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.Float64Var(&atomProbability, "atoms", 0.5, "probability that a cell is an atom scene")
	pf.BoolVar(&labels, "labels", true, "draw curve labels")
	pf.StringSliceVar(&curves, "curves", nil, "restrict curves to these names")
	pf.IntVar(&fps, "fps", 60, "frames per second")
	pf.IntVar(&width, "width", 1280, "grid area width in pixels")
	pf.IntVar(&height, "height", 720, "grid area height in pixels")
	pf.BoolVar(&debug, "debug", false, "draw a probe square on every cell")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "show the grid in a window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "show the grid in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&gifPath, "gif", "canvasgrid.gif", "where G saves the recording")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames headless to an animated GIF and a PNG",
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&frames, "frames", 300, "number of frames")
	renderCmd.Flags().IntVar(&every, "every", 1, "capture every n-th frame")
	renderCmd.Flags().IntVar(&delay, "delay", 2, "GIF frame delay in 100ths of a second")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render frames headless and write the final frame as SVG",
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&frames, "frames", 300, "number of frames")
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file (- for stdout)")

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "list curves",
		RunE:  listCurves,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [curve] [params...]",
		Short: "plot a curve's coordinates over time",
		Args:  cobra.MinimumNArgs(1),
		RunE:  traceCurve,
	}
	traceCmd.Flags().IntVar(&frames, "frames", 400, "number of steps")
	traceCmd.Flags().BoolVar(&csvOut, "csv", false, "write t,x,y as CSV instead of plotting")

	atomsCmd := &cobra.Command{
		Use:   "atoms",
		Short: "run one atom scene and plot its links per frame",
		RunE:  runAtoms,
	}
	atomsCmd.Flags().IntVar(&frames, "frames", 400, "number of frames")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list rendered runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a run's manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's links per frame",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, renderCmd, svgCmd, curvesCmd, traceCmd, atomsCmd, presetsCmd, listCmd, showCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the logging config. The terminal host drops
// the default stderr writer so logs do not tear the display.
func setupLogging(terminal bool) error {
	if err := loggo.ConfigureLoggers(logLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if terminal {
		if _, err := loggo.RemoveWriter("default"); err != nil {
			return err
		}
	}
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	return loggo.RegisterWriter("file", loggo.NewSimpleWriter(f, loggo.DefaultFormatter))
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Infof("window %dx%d, %d cells, seed %d", cfg.Window.Width, cfg.Window.Height, cfg.Count(), cfg.Seed)
	return gui.Run(gridOptions(cfg), cfg.Window.Width, cfg.Window.Height, cfg.Window.FPS)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(gridOptions(cfg), cfg.Window.FPS, gifPath)
}
