// Package sketch implements the rasterisation core of an interactive
// drawing surface.
//
// Lines, polygons and filled regions are converted into writes on an
// integer pixel grid.  There is no anti-aliasing and no sub-pixel
// precision: every primitive has integer vertices and every pixel is
// either written or left alone.
//
// A [DoubleBuffered] raster lets in-progress edits be previewed without
// touching committed state.  Geometry lives in a [Store], which addresses
// vertices by handle so that a [SelectionTracker] can move and resize
// shapes in place.
package sketch

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genref
