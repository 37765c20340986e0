// Package render turns radiation patterns into drawings on a [Surface].
//
//   - [RenderPolar]: reference grid plus one cut as a filled polar polygon
//   - [RenderSurface]: pseudo-3D faceted surface under a fixed oblique projection
//
// Renderers only talk to the [Surface] interface. [Recorder] is an in-memory
// implementation for tests; raster, SVG and terminal surfaces live in their
// own packages.
package render
