package grid_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/teraspora/multiple-canvases/internal/curve"
	"github.com/teraspora/multiple-canvases/internal/grid"
	"github.com/teraspora/multiple-canvases/internal/scene"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

type releasable struct {
	*surface.Recorder
	released bool
}

func (r *releasable) Release() { r.released = true }

var _ = Describe("Grid", func() {
	var (
		opts      grid.Options
		recorders []*releasable
		factory   grid.SurfaceFactory
	)

	BeforeEach(func() {
		opts = grid.DefaultOptions()
		opts.Seed = 7
		recorders = nil
		factory = func(w, h int) surface.Surface {
			r := &releasable{Recorder: surface.NewRecorder(w, h)}
			recorders = append(recorders, r)
			return r
		}
	})

	build := func(w, h int) *grid.Grid {
		g, err := grid.New(opts, factory)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Resize(w, h)).To(Succeed())
		return g
	}

	Describe("layout", func() {
		It("builds d² cells in d columns", func() {
			for d := 0; d <= 9; d++ {
				opts.Digit = d
				g := build(900, 900)
				Expect(g.Cells()).To(HaveLen(d * d))
				Expect(g.Columns()).To(Equal(d))
				for i, c := range g.Cells() {
					Expect(c.Col).To(Equal(i % d))
					Expect(c.Row).To(Equal(i / d))
				}
			}
		})

		It("sizes cells to the area minus the gap", func() {
			opts.Digit = 4
			g := build(1000, 600)
			w, h := g.CellSize()
			Expect(w).To(Equal(240))
			Expect(h).To(Equal(140))
			for _, c := range g.Cells() {
				sw, sh := c.Surface.Size()
				Expect(sw).To(Equal(240))
				Expect(sh).To(Equal(140))
			}
			last := g.Cells()[15]
			Expect(last.X).To(Equal(3*250 + 5))
			Expect(last.Y).To(Equal(3*150 + 5))
		})

		It("clamps tiny cells to one pixel", func() {
			opts.Digit = 9
			g := build(20, 20)
			w, h := g.CellSize()
			Expect(w).To(Equal(1))
			Expect(h).To(Equal(1))
		})

		It("yields an empty grid for digit 0", func() {
			opts.Digit = 0
			g := build(800, 600)
			Expect(g.Cells()).To(BeEmpty())
			Expect(g.Tick()).To(Equal(0))
		})
	})

	Describe("population", func() {
		It("builds only curve scenes when atom probability is 0", func() {
			opts.AtomProbability = 0
			opts.Digit = 6
			g := build(1200, 1200)
			for _, d := range g.Describe() {
				Expect(d.Kind).To(Equal("curve"))
			}
		})

		It("builds only atom scenes when atom probability is 1", func() {
			opts.AtomProbability = 1
			opts.Digit = 3
			g := build(900, 900)
			for _, d := range g.Describe() {
				Expect(d.Kind).To(Equal("atoms"))
				Expect(d.Atoms).To(BeNumerically(">=", 280*280/8192))
			}
		})

		It("restricts curves to the whitelist", func() {
			opts.AtomProbability = 0
			opts.Curves = []string{"ellipse"}
			g := build(800, 800)
			for _, d := range g.Describe() {
				Expect(d.Curve).To(Equal("ellipse"))
				Expect(d.Params).To(HaveLen(2))
			}
		})

		It("rejects unknown curve names", func() {
			opts.Curves = []string{"ellipse", "cardioid"}
			_, err := grid.New(opts, factory)
			Expect(err).To(MatchError(curve.ErrUnknownCurve))
		})

		It("uses thickness 1 for fewer than five cells", func() {
			opts.AtomProbability = 0
			opts.Digit = 2
			g := build(400, 400)
			for _, d := range g.Describe() {
				Expect(d.Thickness).To(Equal(1.0))
			}
		})

		It("assigns unique scene ids across rebuilds", func() {
			opts.AtomProbability = 0
			g := build(800, 800)
			first := g.Describe()
			Expect(g.Rebuild()).To(Succeed())
			second := g.Describe()
			Expect(second[0].ID).To(Equal(first[len(first)-1].ID + 1))
		})

		It("is reproducible for a seed", func() {
			a := build(800, 800).Describe()
			b := build(800, 800).Describe()
			Expect(a).To(Equal(b))
		})

		It("draws a probe square in debug mode", func() {
			opts.Debug = true
			opts.Digit = 2
			build(400, 400)
			for _, r := range recorders {
				Expect(r.Count(surface.OpFillRect)).To(Equal(1))
			}
		})

		It("draws labels only when enabled", func() {
			opts.AtomProbability = 0
			opts.Digit = 2
			opts.Labels = false
			build(400, 400)
			for _, r := range recorders {
				Expect(r.Count(surface.OpFillText)).To(Equal(0))
			}
		})
	})

	Describe("scheduling", func() {
		It("updates every live scene once per tick", func() {
			opts.AtomProbability = 0
			g := build(800, 800)
			Expect(g.Tick()).To(Equal(16))
			Expect(g.Tick()).To(Equal(16))
			for _, c := range g.Cells() {
				Expect(c.Scene.Progress()).To(BeNumerically("~", 2*scene.DefaultStep, 1e-12))
			}
		})

		It("never updates scenes cancelled by a rebuild", func() {
			g := build(800, 800)
			old := g.Cells()
			oldRecorders := append([]*releasable(nil), recorders...)
			g.Tick()

			counts := make([]int, len(oldRecorders))
			for i, r := range oldRecorders {
				counts[i] = len(r.Ops)
			}

			Expect(g.Rebuild()).To(Succeed())
			for i := 0; i < 5; i++ {
				g.Tick()
			}

			for _, c := range old {
				Expect(c.Handle.Live()).To(BeFalse())
			}
			for i, r := range oldRecorders {
				Expect(r.Ops).To(HaveLen(counts[i]))
				Expect(r.released).To(BeTrue())
			}
		})

		It("stops updating after Close", func() {
			g := build(800, 800)
			cells := g.Cells()
			g.Close()
			Expect(g.Tick()).To(Equal(0))
			for _, c := range cells {
				Expect(c.Handle.Live()).To(BeFalse())
			}
			Expect(g.Rebuild()).To(MatchError(grid.ErrClosed))
		})

		It("does not advance while paused", func() {
			g := build(800, 800)
			g.TogglePause()
			Expect(g.Tick()).To(Equal(0))
			for _, c := range g.Cells() {
				Expect(c.Scene.Progress()).To(BeZero())
			}
		})

		It("updates the same scenes in parallel as serially", func() {
			serial := build(800, 800)
			serialRecs := recorders
			recorders = nil
			parallel := build(800, 800)
			parallelRecs := recorders

			for i := 0; i < 20; i++ {
				Expect(serial.Tick()).To(Equal(16))
				Expect(parallel.TickParallel(3)).To(Equal(16))
			}
			Expect(parallel.Describe()).To(Equal(serial.Describe()))
			for i := range serialRecs {
				Expect(parallelRecs[i].Ops).To(Equal(serialRecs[i].Ops))
			}
		})

		It("skips cancelled and paused scenes in parallel", func() {
			g := build(800, 800)
			g.TogglePause()
			Expect(g.TickParallel(4)).To(Equal(0))
			g.TogglePause()
			g.Close()
			Expect(g.TickParallel(4)).To(Equal(0))
		})

		It("runs until the context is cancelled", func() {
			g := build(400, 400)
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			err := g.Run(ctx, 100)
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(g.Cells()[0].Scene.Progress()).To(BeNumerically(">", 0))
		})

		It("rejects a non-positive fps", func() {
			g := build(400, 400)
			Expect(g.Run(context.Background(), 0)).NotTo(Succeed())
		})
	})

	Describe("keys", func() {
		var g *grid.Grid

		BeforeEach(func() {
			g = build(900, 900)
		})

		It("rebuilds with the pressed digit", func() {
			action, err := g.Key("3", grid.Modifiers{})
			Expect(err).NotTo(HaveOccurred())
			Expect(action).To(Equal(grid.ActionRebuilt))
			Expect(g.Cells()).To(HaveLen(9))
			Expect(g.State().Generation).To(Equal(2))
		})

		It("ignores keys with ctrl or alt", func() {
			action, _ := g.Key("3", grid.Modifiers{Ctrl: true})
			Expect(action).To(Equal(grid.ActionNone))
			action, _ = g.Key("2", grid.Modifiers{Alt: true})
			Expect(action).To(Equal(grid.ActionNone))
			Expect(g.Cells()).To(HaveLen(16))
		})

		It("toggles labels and rebuilds", func() {
			before := g.State().Labels
			action, err := g.Key("l", grid.Modifiers{})
			Expect(err).NotTo(HaveOccurred())
			Expect(action).To(Equal(grid.ActionRebuilt))
			Expect(g.State().Labels).To(Equal(!before))
		})

		It("pauses and quits", func() {
			action, _ := g.Key("space", grid.Modifiers{})
			Expect(action).To(Equal(grid.ActionPaused))
			Expect(g.State().Paused).To(BeTrue())

			action, _ = g.Key("q", grid.Modifiers{})
			Expect(action).To(Equal(grid.ActionQuit))
			action, _ = g.Key("escape", grid.Modifiers{})
			Expect(action).To(Equal(grid.ActionQuit))
		})

		It("ignores other keys", func() {
			action, err := g.Key("x", grid.Modifiers{})
			Expect(err).NotTo(HaveOccurred())
			Expect(action).To(Equal(grid.ActionNone))
			Expect(g.State().Generation).To(Equal(1))
		})
	})

	It("builds single scenes by variant", func() {
		g, err := grid.New(opts, factory)
		Expect(err).NotTo(HaveOccurred())
		sc, err := g.Build(grid.VariantAtoms, surface.NewRecorder(300, 300))
		Expect(err).NotTo(HaveOccurred())
		Expect(sc.Kind()).To(Equal("atoms"))

		_, err = g.Build("blobs", surface.NewRecorder(300, 300))
		Expect(err).To(HaveOccurred())
		Expect(grid.Variants()).To(Equal([]string{"atoms", "curve"}))
	})
})
