// Package viz provides a terminal viewer that steps a flight tick by tick.
//
// The viewer is a Bubble Tea program. The trajectory is drawn on a braille
// [Canvas] in side or top view next to a stats panel and a height chart.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single tick while paused
//	R     - Relaunch
//	V     - Side/top view
//	T     - Cycle colour themes
//	?     - Show help overlay
//	[ ]   - Replay recorded ticks
package viz
