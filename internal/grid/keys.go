package grid

// Action is what a host should do after a key press.
type Action int

const (
	ActionNone Action = iota
	ActionRebuilt
	ActionPaused
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionRebuilt:
		return "rebuilt"
	case ActionPaused:
		return "paused"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Modifiers are the modifier keys held during a key press.
type Modifiers struct {
	Ctrl, Alt, Shift bool
}

// Key handles a released key by name: "0".."9" resize the grid, "l"
// toggles labels, "space" pauses, "q" and "escape" ask the host to quit.
// Presses with ctrl or alt held are ignored.
func (g *Grid) Key(name string, mods Modifiers) (Action, error) {
	if mods.Ctrl || mods.Alt {
		return ActionNone, nil
	}
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		if err := g.SetDigit(int(name[0] - '0')); err != nil {
			return ActionNone, err
		}
		return ActionRebuilt, nil
	}
	switch name {
	case "l", "L":
		if err := g.ToggleLabels(); err != nil {
			return ActionNone, err
		}
		return ActionRebuilt, nil
	case "space", " ":
		g.TogglePause()
		return ActionPaused, nil
	case "q", "escape", "esc":
		return ActionQuit, nil
	}
	return ActionNone, nil
}
