package curve

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestParse(t *testing.T) {
	for _, k := range Kinds() {
		got, err := Parse(k.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", k, err)
		}
		if got != k {
			t.Errorf("Parse(%q) = %v, want %v", k, got, k)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("lissajous")
	if !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("expected ErrUnknownCurve, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 10 {
		t.Fatalf("expected 10 curves, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestArity(t *testing.T) {
	tests := []struct {
		kind  Kind
		arity int
	}{
		{Rhodonea, 2},
		{Sine, 2},
		{Ellipse, 2},
		{WobblySpiral, 6},
		{TrigGrid, 2},
		{HCRR, 3},
		{WobblyHCRR, 3},
		{Hypocycloid, 3},
		{Spiral, 2},
		{Unknown, 8},
	}

	for _, tt := range tests {
		if got := tt.kind.Arity(); got != tt.arity {
			t.Errorf("%s: expected arity %d, got %d", tt.kind, tt.arity, got)
		}
		if got := len(tt.kind.ParamNames()); got != tt.arity {
			t.Errorf("%s: expected %d param names, got %d", tt.kind, tt.arity, got)
		}
	}
}

func TestEval(t *testing.T) {
	const tt = 0.7
	tests := []struct {
		name   string
		kind   Kind
		params []float64
		want   Point
	}{
		{"ellipse", Ellipse, []float64{50, 30}, Point{50 * math.Cos(tt), 30 * math.Sin(tt)}},
		{"sine", Sine, []float64{20, 3}, Point{20 * tt, 20 * math.Sin(3*tt)}},
		{"rhodonea", Rhodonea, []float64{0.5, 160},
			Point{160 * math.Cos(1.5*tt) * math.Cos(tt), 160 * math.Cos(1.5*tt) * math.Sin(tt)}},
		{"trig_grid", TrigGrid, []float64{4, 5},
			Point{200 * math.Sin(4*math.Pi*tt/10), 200 * math.Cos(5*math.Pi*tt/10)}},
		{"spiral", Spiral, []float64{150, 20},
			Point{150 * (20*math.Pi - tt) / (20 * math.Pi) * math.Cos(-tt), 150 * (20*math.Pi - tt) / (20 * math.Pi) * math.Sin(-tt)}},
		{"hypocycloid", Hypocycloid, []float64{90, 30, 1},
			Point{60*math.Cos(tt) + 30*math.Cos(2*tt), 60*math.Sin(tt) - 30*math.Sin(2*tt)}},
		{"hcrr", HCRR, []float64{5, 2, 10},
			Point{10 * (3*math.Cos(tt) + 2*math.Cos(1.5*tt)), 10 * (3*math.Sin(tt) - 2*math.Sin(1.5*tt))}},
		{"wobbly_hcrr", WobblyHCRR, []float64{5, 2, 10},
			Point{10*(3*math.Cos(tt)+2*math.Cos(1.5*tt)) + 6*math.Sin(70), 10 * (3*math.Sin(tt) - 2*math.Sin(1.5*tt))}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.kind.Eval(tc.params, tt)
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Eval = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEval_MissingParams(t *testing.T) {
	p := Hypocycloid.Eval([]float64{90}, 0.5)
	if !math.IsNaN(p.X) || !math.IsNaN(p.Y) {
		t.Errorf("expected NaN point for short parameter list, got %v", p)
	}
	if p.IsFinite() {
		t.Error("NaN point reported as finite")
	}
}

func TestEval_ExtraParamsIgnored(t *testing.T) {
	a := Ellipse.Eval([]float64{50, 30}, 1)
	b := Ellipse.Eval([]float64{50, 30, 99, 99}, 1)
	if a != b {
		t.Errorf("surplus parameters changed the result: %v vs %v", a, b)
	}
}

func TestEval_FiniteAtZeroForGeneratedParams(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	widths := []float64{60, 190, 470, 1200}

	for _, k := range Kinds() {
		for _, w := range widths {
			for i := 0; i < 500; i++ {
				params := RandomParams(k, rng, w)
				if len(params) != k.Arity() {
					t.Fatalf("%s: generated %d params, want %d", k, len(params), k.Arity())
				}
				if p := k.Eval(params, 0); !p.IsFinite() {
					t.Fatalf("%s%v at t=0 = %v, want finite", k, params, p)
				}
			}
		}
	}
}

func TestRandInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandInRange(rng, 2, 5)
		if v < 2 || v > 4 || v != math.Floor(v) {
			t.Fatalf("RandInRange(2, 5) = %v, want integer in [2, 4]", v)
		}
	}
}

func TestPoint_Dist(t *testing.T) {
	if d := (Point{0, 0}).Dist(Point{3, 4}); d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
}
