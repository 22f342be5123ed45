// Package viz plays a finished reactor run back in the terminal.
//
// The package implements a tape-deck TUI on the Bubble Tea framework:
// the trajectory is computed up front and a play head moves across it,
// so scrubbing backwards is exact and free.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from day zero
//	[ ]   - Step one snapshot
//	{ }   - Jump a tenth of the run
//	+ -   - Double/halve playback speed
//	?     - Show help overlay
//	Q     - Quit
package viz
