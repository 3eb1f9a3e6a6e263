package viz

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teraspora/multiple-canvases/internal/grid"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := grid.DefaultOptions()
	opts.Seed = 11
	m, err := NewModel(opts, 60, filepath.Join(t.TempDir(), "grid.gif"))
	if err != nil {
		t.Fatal(err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelResizePopulates(t *testing.T) {
	m := newTestModel(t)
	if got := len(m.Grid().Cells()); got != 16 {
		t.Fatalf("expected 16 cells, got %d", got)
	}
	w, h := m.Grid().Area()
	if w != 120*2*DefaultScale || h != 37*4*DefaultScale {
		t.Errorf("unexpected area %dx%d", w, h)
	}
	if _, ok := m.Grid().Cells()[0].Surface.(*Surface); !ok {
		t.Error("expected braille surfaces")
	}
	if m.View() == "" {
		t.Error("expected a view")
	}
}

func TestModelDigitRebuilds(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('2'))
	m = next.(Model)
	if cmd != nil {
		t.Error("expected no command")
	}
	if got := len(m.Grid().Cells()); got != 4 {
		t.Errorf("expected 4 cells, got %d", got)
	}
}

func TestModelPauseAndTick(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	p := m.Grid().Cells()[0].Scene.Progress()
	if p == 0 {
		t.Error("expected progress after a tick")
	}

	next, _ = m.Update(runeKey(' '))
	m = next.(Model)
	if !m.Grid().State().Paused {
		t.Fatal("expected paused")
	}
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if got := m.Grid().Cells()[0].Scene.Progress(); got != p {
		t.Errorf("expected progress to hold at %f, got %f", p, got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.Update(runeKey('q')); !isQuit(cmd) {
		t.Error("expected q to quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); !isQuit(cmd) {
		t.Error("expected esc to quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("expected ctrl+c to quit")
	}
}

func TestModelTheme(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(runeKey('t'))
	if got := next.(Model).theme.Name; got != Themes[1].Name {
		t.Errorf("expected theme %s, got %s", Themes[1].Name, got)
	}
}

func TestModelRecording(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(runeKey('g'))
	m = next.(Model)
	for i := 0; i < 3; i++ {
		next, _ = m.Update(TickMsg{})
		m = next.(Model)
	}
	next, _ = m.Update(runeKey('g'))
	m = next.(Model)
	if m.recording {
		t.Error("expected recording to stop")
	}
	if fi, err := os.Stat(m.gifPath); err != nil || fi.Size() == 0 {
		t.Errorf("expected gif to be written: %v", err)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		in   string
		name string
		mods grid.Modifiers
	}{
		{"3", "3", grid.Modifiers{}},
		{" ", "space", grid.Modifiers{}},
		{"esc", "escape", grid.Modifiers{}},
		{"ctrl+3", "3", grid.Modifiers{Ctrl: true}},
		{"ctrl+alt+l", "l", grid.Modifiers{Ctrl: true, Alt: true}},
		{"alt+2", "2", grid.Modifiers{Alt: true}},
	}
	for _, tt := range tests {
		name, mods := keyName(tt.in)
		if name != tt.name || mods != tt.mods {
			t.Errorf("%q: expected %q %+v, got %q %+v", tt.in, tt.name, tt.mods, name, mods)
		}
	}
}

func TestSparkline(t *testing.T) {
	m := newTestModel(t)
	st := m.theme.styles()
	if got := Sparkline([]float64{0, 7}, 10, st.text); got == "" {
		t.Error("expected sparkline")
	}
	if Sparkline(nil, 0, st.text) != "" {
		t.Error("expected empty sparkline for zero width")
	}
}
