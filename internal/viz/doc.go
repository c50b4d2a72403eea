// Package viz renders the rotating helix in the terminal.
//
// The helix is drawn as a braille wireframe:
//
//   - [Canvas]: braille pixel grid, 2x4 sub-pixels per cell
//   - [Camera]: perspective projection with tilt and zoom
//   - [Model]: Bubble Tea program with the slider panel
//
// # Key Bindings
//
//	↑/↓ j/k   - Select slider
//	←/→ h/l   - Adjust slider (H/L for coarse steps)
//	1-9       - Apply preset
//	+/-       - Zoom
//	T         - Cycle color themes
//	P         - Pause rotation
//	Q         - Quit
package viz
