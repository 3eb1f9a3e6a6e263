package store

import (
	"errors"
	"os"
	"testing"

	"github.com/teraspora/multiple-canvases/internal/scene"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, dir, err := st.Create(4)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if runID == "" || dir == "" {
		t.Fatal("expected non-empty run id and dir")
	}

	m := &Manifest{
		ID:     runID,
		Seed:   42,
		Digit:  4,
		Frames: 2,
		Files:  []string{"grid.gif"},
		Scenes: []scene.Descriptor{
			{ID: 0, Kind: "curve", Curve: "ellipse", Params: []float64{50, 30}, Thickness: 1},
			{ID: 0, Kind: "atoms", Atoms: 12, ColourConnections: true},
		},
	}
	stats := []FrameStat{{Frame: 0, Updated: 2, Links: 3}, {Frame: 1, Updated: 2, Links: 5}}
	if err := st.Save(m, stats); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Seed != 42 {
		t.Errorf("expected seed 42, got %d", got.Seed)
	}
	if len(got.Scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(got.Scenes))
	}
	if got.Scenes[0].Curve != "ellipse" || got.Scenes[0].Params[1] != 30 {
		t.Errorf("unexpected curve scene %+v", got.Scenes[0])
	}
	if got.Scenes[1].Atoms != 12 || !got.Scenes[1].ColourConnections {
		t.Errorf("unexpected atom scene %+v", got.Scenes[1])
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}

	loaded, err := st.LoadStats(runID)
	if err != nil {
		t.Fatalf("load stats failed: %v", err)
	}
	if len(loaded) != 2 || loaded[1].Links != 5 {
		t.Errorf("unexpected stats %+v", loaded)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	for i := 0; i < 3; i++ {
		id, _, err := st.Create(i)
		if err != nil {
			t.Fatal(err)
		}
		if err := st.Save(&Manifest{ID: id, Digit: i}, nil); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(st.Path("broken", ""), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].Timestamp.After(runs[i-1].Timestamp) {
			t.Error("expected newest first")
		}
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	stats, err := st.LoadStats("nope")
	if err != nil || len(stats) != 0 {
		t.Errorf("expected no stats, got %v, %v", stats, err)
	}
}

func TestStoreSaveWithoutID(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Save(&Manifest{}, nil); err == nil {
		t.Error("expected error for manifest without id")
	}
}
