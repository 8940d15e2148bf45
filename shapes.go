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

import "math"

// CircleVertices is the number of vertices used to approximate a circle.
const CircleVertices = 36

// Rectangle returns the axis-aligned rectangle with opposite corners
// start and end.  The vertices are (sx, sy), (ex, sy), (ex, ey), (sx, ey).
func Rectangle(start, end Point) Polygon {
	return Polygon{Points: []Point{
		{start.X, start.Y},
		{end.X, start.Y},
		{end.X, end.Y},
		{start.X, end.Y},
	}}
}

// Triangle returns the isosceles triangle inscribed in the box spanned by
// start and end, with the apex on the start row.
func Triangle(start, end Point) Polygon {
	w := end.X - start.X
	return Polygon{Points: []Point{
		{start.X + w/2, start.Y},
		{end.X, end.Y},
		{start.X, end.Y},
	}}
}

// Circle approximates the circle around center which passes through edge
// by a regular polygon with [CircleVertices] vertices.  The radius and the
// vertex coordinates are truncated towards zero.
func Circle(center, edge Point) Polygon {
	r := float64(int(center.DistanceTo(edge)))
	pts := make([]Point, CircleVertices)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / CircleVertices
		pts[i] = Point{
			X: int(float64(center.X) + r*math.Cos(phi)),
			Y: int(float64(center.Y) + r*math.Sin(phi)),
		}
	}
	return Polygon{Points: pts}
}

// Align constrains target relative to anchor: the result lies on the
// horizontal through anchor if the horizontal distance dominates, on the
// vertical if the vertical distance dominates, and is left unchanged
// when it already lies on a diagonal.
func Align(anchor, target Point) Point {
	dx := target.X - anchor.X
	dy := target.Y - anchor.Y
	switch adx, ady := iabs(dx), iabs(dy); {
	case adx > ady:
		return Point{target.X, anchor.Y}
	case ady > adx:
		return Point{anchor.X, target.Y}
	default:
		// |dx| == |dy|: target already is on a diagonal
		return target
	}
}
