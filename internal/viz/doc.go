// Package viz hosts the canvas grid in a terminal.
//
// Every cell is drawn on its own braille [Canvas] through a [Surface] that
// maps grid pixels onto braille dots, and the Bubble Tea [Model] lays the
// cells out with lipgloss.
//
// # Key Bindings
//
//	0-9   - Rebuild with d×d cells
//	L     - Toggle curve labels (rebuilds)
//	Space - Pause/Resume
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help
//	Q/Esc - Quit
package viz
