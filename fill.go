// seehuhn.de/go/sketch - pixel rasterisation for interactive drawing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketch

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule selects how overlapping parts of a polygon are treated.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(" + strconv.Itoa(int(r)) + ")"
	}
}

// edge represents a polygon edge in pixel coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// PolygonFiller paints the interior of polygons.
//
// Vertices are placed at pixel centres and the exact area of the polygon
// inside each pixel is computed.  Pixels which are at least half covered
// are painted; all others are left alone.  There is no blending.
//
// Create one instance and reuse it for multiple polygons.  Internal
// buffers grow as needed but never shrink.
//
// A PolygonFiller is not safe for concurrent use.
type PolygonFiller struct {
	// Clip bounds output to this rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	dst Surface

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers (Approach A). Polygons with larger bounding boxes
	// use the active edge list (Approach B).
	smallPathThreshold int

	// Internal buffers (reused across calls)
	cover       []float32 // coverage accumulation: cover change per pixel; reused as output
	area        []float32 // coverage accumulation: area within pixel
	edges       []edge    // edge list for current polygon
	activeIdx   []int     // indices of active edges
	rowHasEdges []bool    // per-scanline flag: true if any edge contributes

	// Edge collection state (used by collectPathEdges/addEdge)
	edgeBBoxFirst bool
	edgeXMin      float64
	edgeXMax      float64
	edgeYMin      float64
	edgeYMax      float64
}

// NewPolygonFiller returns a filler which paints onto dst, clipped to the
// bounds of dst.
func NewPolygonFiller(dst Surface) *PolygonFiller {
	return &PolygonFiller{
		Clip: rect.Rect{
			URx: float64(dst.Width()),
			URy: float64(dst.Height()),
		},
		dst:                dst,
		smallPathThreshold: smallPathThreshold,
	}
}

// Fill paints the interior of pg with c.  Polygons with fewer than three
// vertices have no interior and are ignored.
func (f *PolygonFiller) Fill(pg Polygon, c Color, rule FillRule) {
	if len(pg.Points) < 3 {
		return
	}
	f.fill(outline(pg), rule, func(y, xMin int, coverage []float32) {
		for i, cov := range coverage {
			if cov >= coverageThreshold {
				f.dst.SetPixel(xMin+i, y, c)
			}
		}
	})
}

// outline converts pg into a closed path through the pixel centres of
// its vertices.
func outline(pg Polygon) *path.Data {
	p := &path.Data{}
	for i, pt := range pg.Points {
		v := pt.vec().Add(vec.Vec2{X: 0.5, Y: 0.5})
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// fill computes the coverage of the path and hands it to emit row by row.
// The slice passed to emit is valid only during the call.
func (f *PolygonFiller) fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := f.collectPathEdges(p)
	if !ok {
		return // empty or degenerate path
	}

	width := xMax - xMin
	height := yMax - yMin
	if width*height < f.smallPathThreshold {
		f.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		f.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectPathEdges walks the path and builds the edge list.
// Returns the bounding box of all edges (clamped to clip).
func (f *PolygonFiller) collectPathEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	f.edges = f.edges[:0]
	f.edgeBBoxFirst = true

	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			f.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdClose:
			if current != subpath {
				f.addEdge(current, subpath)
			}
			current = subpath
		}
	}

	if len(f.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(f.edgeXMin)), int(f.Clip.LLx))
	xMax = min(int(math.Floor(f.edgeXMax))+1, int(f.Clip.URx))
	yMin = max(int(math.Floor(f.edgeYMin)), int(f.Clip.LLy))
	yMax = min(int(math.Floor(f.edgeYMax))+1, int(f.Clip.URy))

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge appends the edge from p0 to p1, skipping horizontal edges.
func (f *PolygonFiller) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	f.edges = append(f.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if f.edgeBBoxFirst {
		f.edgeXMin = min(p0.X, p1.X)
		f.edgeXMax = max(p0.X, p1.X)
		f.edgeYMin = min(p0.Y, p1.Y)
		f.edgeYMax = max(p0.Y, p1.Y)
		f.edgeBBoxFirst = false
	} else {
		f.edgeXMin = min(f.edgeXMin, p0.X, p1.X)
		f.edgeXMax = max(f.edgeXMax, p0.X, p1.X)
		f.edgeYMin = min(f.edgeYMin, p0.Y, p1.Y)
		f.edgeYMax = max(f.edgeYMax, p0.Y, p1.Y)
	}
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = sign * dy   (where sign is +1 for downward, -1 for upward)
//   area  = cover * (1 - xFrac)   (where xFrac is the horizontal position within the pixel)
//
// Final coverage is computed by integrateScanline:
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]   (carry forward for next pixel)
//
// The result is the fraction of each pixel inside the polygon, which is
// then thresholded to decide whether the pixel is painted.

// accumulateEdge adds a single edge's contribution to the cover and area
// buffers.  The buffers are indexed by (x - bboxXMin).  Edges spanning
// several pixels horizontally are split at pixel boundaries.
func (f *PolygonFiller) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xAtYTop := e.x0 + e.dxdy*(yTop-e.y0)
	xAtYBot := e.x0 + e.dxdy*(yBot-e.y0)
	xLeft, xRight := min(xAtYTop, xAtYBot), max(xAtYTop, xAtYBot)

	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		// entirely left of the box: full cover for the first pixel
		coverVal := sign * float32(yBot-yTop)
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		accumulateInColumn(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yAtPixLeft := e.y0 + dydx*(float64(pix)-e.x0)
		yAtPixRight := e.y0 + dydx*(float64(pix+1)-e.x0)

		segYMin := max(min(yAtPixLeft, yAtPixRight), yTop)
		segYMax := min(max(yAtPixLeft, yAtPixRight), yBot)
		if segYMax <= segYMin {
			continue
		}

		coverVal := sign * float32(segYMax-segYMin)
		yMid := (segYMin + segYMax) / 2
		xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)
		areaVal := coverVal * float32(1-xFrac)

		if pix < bboxXMin {
			cover[0] += coverVal
			area[0] += coverVal
		} else if pix < bboxXMax {
			idx := pix - bboxXMin
			cover[idx] += coverVal
			area[idx] += areaVal
		}
	}
}

// accumulateInColumn handles an edge segment that falls within a single
// pixel column.
func accumulateInColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	coverVal := sign * float32(yBot-yTop)

	if pix < bboxXMin {
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pix >= bboxXMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)

	idx := pix - bboxXMin
	cover[idx] += coverVal
	area[idx] += coverVal * float32(1-xFrac)
}

// integrateNonZero converts accumulated cover/area to coverage using the
// nonzero winding rule.  The cover slice is modified in place.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd converts accumulated cover/area to coverage using the
// even-odd rule.  The cover slice is modified in place.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := abs32(accum + area[i])
		accum += cover[i]

		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func integrate(rule FillRule, cover, area []float32) {
	if rule == EvenOdd {
		integrateEvenOdd(cover, area)
	} else {
		integrateNonZero(cover, area)
	}
}

// trimZeros returns the non-zero portion of coverage and its starting
// offset.  Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// fillSmallPath uses 2D buffers for the whole bounding box (Approach A).
func (f *PolygonFiller) fillSmallPath(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	f.cover = slices.Grow(f.cover[:0], size)[:size]
	f.area = slices.Grow(f.area[:0], size)[:size]
	clear(f.cover)
	clear(f.area)

	f.rowHasEdges = slices.Grow(f.rowHasEdges[:0], height)[:height]
	clear(f.rowHasEdges)

	for i := range f.edges {
		e := &f.edges[i]

		eyMin := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		eyMax := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := eyMin; y < eyMax; y++ {
			row := y - yMin
			off := row * width
			f.accumulateEdge(e, y, f.cover[off:off+width], f.area[off:off+width], xMin, xMax)
			f.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !f.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := f.cover[off : off+width]
		integrate(rule, coverage, f.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLargePath uses 1D buffers and an active edge list (Approach B).
func (f *PolygonFiller) fillLargePath(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	f.cover = slices.Grow(f.cover[:0], width)[:width]
	f.area = slices.Grow(f.area[:0], width)[:width]

	slices.SortFunc(f.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	f.activeIdx = f.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for nextEdge < len(f.edges) && min(f.edges[nextEdge].y0, f.edges[nextEdge].y1) < yfNext {
			f.activeIdx = append(f.activeIdx, nextEdge)
			nextEdge++
		}
		if len(f.activeIdx) == 0 {
			continue
		}

		clear(f.cover)
		clear(f.area)

		touched := false
		for i := 0; i < len(f.activeIdx); {
			e := &f.edges[f.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// swap-remove
				f.activeIdx[i] = f.activeIdx[len(f.activeIdx)-1]
				f.activeIdx = f.activeIdx[:len(f.activeIdx)-1]
				continue
			}
			f.accumulateEdge(e, y, f.cover, f.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(rule, f.cover, f.area)
		if trimmed, offset := trimZeros(f.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// coverageThreshold is the fraction of a pixel which must be inside
	// the polygon for the pixel to be painted.
	coverageThreshold = 0.5

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers.
	smallPathThreshold = 65536
)
