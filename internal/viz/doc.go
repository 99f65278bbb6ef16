// Package viz provides the terminal front end for the orbit simulation.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: drives a sim.Controller from Bubble Tea tick messages
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	T     - Toggle orbit trails
//	+/=   - Speed up
//	-     - Slow down
//	C     - Cycle color themes
//	?     - Show help overlay
//	Q/Esc - Quit
//
// The control strip on the first row responds to mouse clicks the same
// way the window front end does.
package viz
