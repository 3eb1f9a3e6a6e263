package gui

import (
	"image/color"
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  int32
		name string
		ok   bool
	}{
		{rl.KeyZero, "0", true},
		{rl.KeyNine, "9", true},
		{rl.KeyKp4, "4", true},
		{rl.KeyL, "l", true},
		{rl.KeySpace, "space", true},
		{rl.KeyEscape, "escape", true},
		{rl.KeyA, "", false},
	}
	for _, tt := range tests {
		name, ok := keyName(tt.key)
		if name != tt.name || ok != tt.ok {
			t.Errorf("key %d: expected %q %v, got %q %v", tt.key, tt.name, tt.ok, name, ok)
		}
	}
}

func TestToRL(t *testing.T) {
	got := toRL(color.NRGBA{R: 68, G: 221, B: 255, A: 128})
	if got != rl.NewColor(68, 221, 255, 128) {
		t.Errorf("unexpected colour %v", got)
	}
}

func TestFinite(t *testing.T) {
	if !finite(vec(1, 2)) {
		t.Error("expected finite vector")
	}
	if finite(vec(math.NaN(), 2)) || finite(vec(1, math.Inf(1))) {
		t.Error("expected non-finite vector")
	}
}
