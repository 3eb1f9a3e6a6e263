package play

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/teraspora/multiple-canvases/internal/grid"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyDigit0:  "0",
	ebiten.KeyDigit1:  "1",
	ebiten.KeyDigit2:  "2",
	ebiten.KeyDigit3:  "3",
	ebiten.KeyDigit4:  "4",
	ebiten.KeyDigit5:  "5",
	ebiten.KeyDigit6:  "6",
	ebiten.KeyDigit7:  "7",
	ebiten.KeyDigit8:  "8",
	ebiten.KeyDigit9:  "9",
	ebiten.KeyNumpad0: "0",
	ebiten.KeyNumpad1: "1",
	ebiten.KeyNumpad2: "2",
	ebiten.KeyNumpad3: "3",
	ebiten.KeyNumpad4: "4",
	ebiten.KeyNumpad5: "5",
	ebiten.KeyNumpad6: "6",
	ebiten.KeyNumpad7: "7",
	ebiten.KeyNumpad8: "8",
	ebiten.KeyNumpad9: "9",
	ebiten.KeyL:       "l",
	ebiten.KeySpace:   "space",
	ebiten.KeyQ:       "q",
	ebiten.KeyEscape:  "escape",
}

func keyName(k ebiten.Key) (string, bool) {
	name, ok := keyNames[k]
	return name, ok
}

func modifiers() grid.Modifiers {
	return grid.Modifiers{
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}
