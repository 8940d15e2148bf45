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

// PolygonRasterizer draws polygon outlines through a [LineRasterizer].
//
// The zero value is not usable; create instances with
// [NewPolygonRasterizer].
type PolygonRasterizer struct {
	lines *LineRasterizer
}

// NewPolygonRasterizer returns a polygon rasterizer which draws its edges
// with lines.  It panics if lines is nil.
func NewPolygonRasterizer(lines *LineRasterizer) *PolygonRasterizer {
	if lines == nil {
		panic("sketch: PolygonRasterizer needs a line rasterizer")
	}
	return &PolygonRasterizer{lines: lines}
}

// Rasterize draws the closed outline of pg, from each vertex to the next
// and from the last vertex back to the first.  Polygons with fewer than
// two vertices are ignored.
//
// The width applies to this call only: the width of the underlying line
// rasterizer is restored before Rasterize returns.
func (r *PolygonRasterizer) Rasterize(pg Polygon, c Color, style LineStyle, width int) {
	if r.lines == nil {
		panic("sketch: PolygonRasterizer used without a line rasterizer")
	}

	pts := pg.Points
	n := len(pts)
	if n < 2 {
		return
	}

	saved := r.lines.LineWidth()
	r.lines.SetLineWidth(width)
	defer r.lines.SetLineWidth(saved)

	for i := range n {
		r.lines.segment(pts[i], pts[(i+1)%n], c, style)
	}
}

// IsPointInsidePolygon reports whether p lies inside pg.
// See [Polygon.Contains] for the exact rule.
func (r *PolygonRasterizer) IsPointInsidePolygon(pg Polygon, p Point) bool {
	return pg.Contains(p)
}
