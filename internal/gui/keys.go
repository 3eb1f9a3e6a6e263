package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/teraspora/multiple-canvases/internal/grid"
)

type binding struct {
	key  int32
	name string
}

var bindings = []binding{
	{rl.KeyZero, "0"},
	{rl.KeyOne, "1"},
	{rl.KeyTwo, "2"},
	{rl.KeyThree, "3"},
	{rl.KeyFour, "4"},
	{rl.KeyFive, "5"},
	{rl.KeySix, "6"},
	{rl.KeySeven, "7"},
	{rl.KeyEight, "8"},
	{rl.KeyNine, "9"},
	{rl.KeyKp0, "0"},
	{rl.KeyKp1, "1"},
	{rl.KeyKp2, "2"},
	{rl.KeyKp3, "3"},
	{rl.KeyKp4, "4"},
	{rl.KeyKp5, "5"},
	{rl.KeyKp6, "6"},
	{rl.KeyKp7, "7"},
	{rl.KeyKp8, "8"},
	{rl.KeyKp9, "9"},
	{rl.KeyL, "l"},
	{rl.KeySpace, "space"},
	{rl.KeyQ, "q"},
	{rl.KeyEscape, "escape"},
}

// keyName returns the grid key name of a raylib key code.
func keyName(key int32) (string, bool) {
	for _, b := range bindings {
		if b.key == key {
			return b.name, true
		}
	}
	return "", false
}

func modifiers() grid.Modifiers {
	return grid.Modifiers{
		Ctrl:  rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Alt:   rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
		Shift: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
	}
}

// released lists the grid names of keys released this frame.
func released() []string {
	var names []string
	for _, b := range bindings {
		if rl.IsKeyReleased(b.key) {
			names = append(names, b.name)
		}
	}
	return names
}
