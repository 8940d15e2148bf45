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
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Translate moves p by (dx, dy) in place.
func (p *Point) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return q.vec().Sub(p.vec()).Length()
}

func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Segment is an ordered pair of end points.
type Segment struct {
	A, B Point
}

// LineStyle selects which pixels along a rasterised run are written.
type LineStyle int

// These are the supported line styles.
const (
	Solid LineStyle = iota
	Dotted
	Dashed
)

func (s LineStyle) String() string {
	switch s {
	case Solid:
		return "solid"
	case Dotted:
		return "dotted"
	case Dashed:
		return "dashed"
	default:
		return "LineStyle(" + strconv.Itoa(int(s)) + ")"
	}
}

// Accepts reports whether the pixel at the given position is drawn.
// The position is the distance along the major axis from the start of
// the run and must be non-negative.
//
// Dotted lines repeat 2 pixels on and 2 off, dashed lines 8 on and 4 off.
// Unknown styles draw like Solid.
func (s LineStyle) Accepts(position int) bool {
	switch s {
	case Dotted:
		return position%4 < 2
	case Dashed:
		return position%12 < 8
	default:
		return true
	}
}

// Shape is implemented by the primitive kinds which can be selected.
type Shape interface {
	// HitTest reports whether p selects the shape.
	HitTest(p Point) bool

	// Edges returns the segments which make up the outline of the shape.
	Edges() []Segment
}

// LineHitTolerance is the distance (in pixels) below which a point
// selects a line.
const LineHitTolerance = 5

// Line is a straight segment with a color and a style.
// The direction matters: P1 is the origin of the style pattern.
type Line struct {
	P1, P2 Point
	Color  Color
	Style  LineStyle
}

// HitTest reports whether p is closer than [LineHitTolerance] to l.
func (l Line) HitTest(p Point) bool {
	return l.Near(p, LineHitTolerance)
}

// Near reports whether the distance from p to the segment l is less than
// tol.  The query point is projected onto the line through the segment
// and the projection is clamped to the end points.
func (l Line) Near(p Point, tol float64) bool {
	a, q := l.P1.vec(), p.vec()
	d := l.P2.vec().Sub(a)
	n := d.Dot(d)
	if n == 0 {
		return q.Sub(a).Length() < tol
	}
	t := q.Sub(a).Dot(d) / n
	t = max(0, min(1, t))
	return q.Sub(a.Add(d.Mul(t))).Length() < tol
}

// Edges returns the single segment of l.
func (l Line) Edges() []Segment {
	return []Segment{{A: l.P1, B: l.P2}}
}

// Polygon is an ordered sequence of vertices.  The outline closes
// implicitly from the last vertex back to the first.
type Polygon struct {
	Points []Point
}

// HitTest reports whether p lies inside pg, see [Polygon.Contains].
func (pg Polygon) HitTest(p Point) bool {
	return pg.Contains(p)
}

// Contains tests whether p lies inside the polygon using the even-odd
// rule.  Vertices count as inside.
//
// The x-intercept of each crossing edge is computed in integer
// arithmetic.  Horizontal edges never satisfy the crossing test, so the
// division is never by zero.
func (pg Polygon) Contains(p Point) bool {
	pts := pg.Points
	n := len(pts)
	x, y := p.X, p.Y
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := pts[i].X, pts[i].Y
		xj, yj := pts[j].X, pts[j].Y

		if (xi == x && yi == y) || (xj == x && yj == y) {
			return true
		}

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Edges returns the closed outline of pg.  Polygons with fewer than two
// vertices have no edges.
func (pg Polygon) Edges() []Segment {
	n := len(pg.Points)
	if n < 2 {
		return nil
	}
	edges := make([]Segment, n)
	for i := range n {
		edges[i] = Segment{A: pg.Points[i], B: pg.Points[(i+1)%n]}
	}
	return edges
}
