// Package viz provides the terminal pattern explorer.
//
// The explorer is a Bubble Tea program that draws the azimuth and elevation
// cuts and the pseudo-3D surface onto Braille canvases:
//
//   - [Model]: interactive explorer driving an engine.Engine
//   - [Canvas]: Braille dot grid that implements render.Surface
//   - [Controls]: per-antenna parameter sliders with fixed ranges
//   - Theme selection with 4 built-in colour schemes
//
// # Key Bindings
//
//	1-4 / Tab - Select antenna type
//	J/K       - Select parameter
//	H/L       - Adjust parameter
//	R         - Reset the current type to its defaults
//	V         - Toggle polar / 3D view
//	S         - Save a PNG snapshot
//	T         - Cycle colour themes
//	Q         - Quit
package viz
