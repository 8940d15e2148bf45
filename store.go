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

import "slices"

// PointID identifies a vertex in a [Store].
type PointID int

// LineID identifies a line in a [Store].
type LineID int

// PolygonID identifies a polygon in a [Store].
type PolygonID int

// ShapeKind distinguishes the two kinds of stored shapes.
type ShapeKind int

// These are the kinds of shapes held by a [Store].
const (
	KindLine ShapeKind = iota + 1
	KindPolygon
)

// ShapeRef refers to a line or a polygon in a [Store].
type ShapeRef struct {
	Kind  ShapeKind
	Index int
}

// LineRef returns a reference to the given line.
func LineRef(id LineID) ShapeRef {
	return ShapeRef{Kind: KindLine, Index: int(id)}
}

// PolygonRef returns a reference to the given polygon.
func PolygonRef(id PolygonID) ShapeRef {
	return ShapeRef{Kind: KindPolygon, Index: int(id)}
}

type lineRecord struct {
	p1, p2 PointID
	color  Color
	style  LineStyle
	width  int
}

type polygonRecord struct {
	pts   []PointID
	color Color
	style LineStyle
	width int
}

// Store owns the geometry of a drawing.
//
// Vertices are held in an arena and addressed by [PointID].  Lines and
// polygons refer to their vertices by ID, so that a vertex shared by
// several shapes is moved for all of them at once, while two coincident
// vertices remain distinct.  All geometry changes go through the store.
//
// Lines and polygons are kept in two separate collections, each in the
// order in which the shapes were added.  Methods which take an ID panic
// if the ID is out of range.
type Store struct {
	points   []Point
	lines    []lineRecord
	polygons []polygonRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// AddPoint adds a new vertex.
func (s *Store) AddPoint(p Point) PointID {
	s.points = append(s.points, p)
	return PointID(len(s.points) - 1)
}

// Point returns the position of a vertex.
func (s *Store) Point(id PointID) Point {
	return s.points[id]
}

// SetPoint moves a vertex to p.
func (s *Store) SetPoint(id PointID, p Point) {
	s.points[id] = p
}

// MovePoint translates a single vertex.
func (s *Store) MovePoint(id PointID, dx, dy int) {
	s.points[id].Translate(dx, dy)
}

func (s *Store) validPoint(id PointID) bool {
	return id >= 0 && int(id) < len(s.points)
}

// Translate moves each distinct vertex in ids by (dx, dy).  Vertices which
// occur more than once in ids are moved only once.
func (s *Store) Translate(ids []PointID, dx, dy int) {
	uniq := slices.Clone(ids)
	slices.Sort(uniq)
	for _, id := range slices.Compact(uniq) {
		s.points[id].Translate(dx, dy)
	}
}

// AddLine stores l with two new vertices.  The width is the line width
// used when the line is redrawn.
func (s *Store) AddLine(l Line, width int) LineID {
	a := s.AddPoint(l.P1)
	b := s.AddPoint(l.P2)
	return s.ConnectLine(a, b, l.Color, l.Style, width)
}

// ConnectLine stores a line between two existing vertices.
func (s *Store) ConnectLine(a, b PointID, c Color, style LineStyle, width int) LineID {
	if !s.validPoint(a) || !s.validPoint(b) {
		panic("sketch: invalid vertex ID")
	}
	s.lines = append(s.lines, lineRecord{
		p1:    a,
		p2:    b,
		color: c,
		style: style,
		width: max(1, width),
	})
	return LineID(len(s.lines) - 1)
}

// Line returns the current geometry of a stored line.
func (s *Store) Line(id LineID) Line {
	rec := &s.lines[id]
	return Line{
		P1:    s.points[rec.p1],
		P2:    s.points[rec.p2],
		Color: rec.color,
		Style: rec.style,
	}
}

// LineWidth returns the width a stored line is drawn with.
func (s *Store) LineWidth(id LineID) int {
	return s.lines[id].width
}

// LineVertices returns the IDs of the end points of a line.
func (s *Store) LineVertices(id LineID) (PointID, PointID) {
	rec := &s.lines[id]
	return rec.p1, rec.p2
}

// Lines returns the IDs of all lines, oldest first.
func (s *Store) Lines() []LineID {
	ids := make([]LineID, len(s.lines))
	for i := range ids {
		ids[i] = LineID(i)
	}
	return ids
}

// NumLines returns the number of stored lines.
func (s *Store) NumLines() int {
	return len(s.lines)
}

// RemoveLastLine removes the most recently added line and reports whether
// there was one.  The vertices of the line stay in the arena.
func (s *Store) RemoveLastLine() bool {
	if len(s.lines) == 0 {
		return false
	}
	s.lines = s.lines[:len(s.lines)-1]
	return true
}

// AddPolygon stores pg with one new vertex per point, together with the
// attributes used when the outline is redrawn.
func (s *Store) AddPolygon(pg Polygon, c Color, style LineStyle, width int) PolygonID {
	ids := make([]PointID, len(pg.Points))
	for i, p := range pg.Points {
		ids[i] = s.AddPoint(p)
	}
	s.polygons = append(s.polygons, polygonRecord{
		pts:   ids,
		color: c,
		style: style,
		width: max(1, width),
	})
	return PolygonID(len(s.polygons) - 1)
}

// Polygon returns the current geometry of a stored polygon.
func (s *Store) Polygon(id PolygonID) Polygon {
	rec := &s.polygons[id]
	pts := make([]Point, len(rec.pts))
	for i, pid := range rec.pts {
		pts[i] = s.points[pid]
	}
	return Polygon{Points: pts}
}

// PolygonStroke returns the color, style and width a stored polygon is
// drawn with.
func (s *Store) PolygonStroke(id PolygonID) (Color, LineStyle, int) {
	rec := &s.polygons[id]
	return rec.color, rec.style, rec.width
}

// PolygonVertices returns the vertex IDs of a polygon, in order.
func (s *Store) PolygonVertices(id PolygonID) []PointID {
	return slices.Clone(s.polygons[id].pts)
}

// Polygons returns the IDs of all polygons, oldest first.
func (s *Store) Polygons() []PolygonID {
	ids := make([]PolygonID, len(s.polygons))
	for i := range ids {
		ids[i] = PolygonID(i)
	}
	return ids
}

// NumPolygons returns the number of stored polygons.
func (s *Store) NumPolygons() int {
	return len(s.polygons)
}

// Shape returns the current geometry of the referenced shape, or nil if
// the reference is invalid.
func (s *Store) Shape(ref ShapeRef) Shape {
	switch ref.Kind {
	case KindLine:
		if ref.Index >= 0 && ref.Index < len(s.lines) {
			return s.Line(LineID(ref.Index))
		}
	case KindPolygon:
		if ref.Index >= 0 && ref.Index < len(s.polygons) {
			return s.Polygon(PolygonID(ref.Index))
		}
	}
	return nil
}

// Vertices returns the vertex IDs of the referenced shape.
func (s *Store) Vertices(ref ShapeRef) []PointID {
	switch ref.Kind {
	case KindLine:
		a, b := s.LineVertices(LineID(ref.Index))
		return []PointID{a, b}
	case KindPolygon:
		return s.PolygonVertices(PolygonID(ref.Index))
	}
	return nil
}

// Pick returns the topmost shape at p.  Polygons take precedence over
// lines; within each collection newer shapes take precedence over older
// ones.
func (s *Store) Pick(p Point) (ShapeRef, bool) {
	for i := len(s.polygons) - 1; i >= 0; i-- {
		if s.Polygon(PolygonID(i)).HitTest(p) {
			return PolygonRef(PolygonID(i)), true
		}
	}
	for i := len(s.lines) - 1; i >= 0; i-- {
		if s.Line(LineID(i)).HitTest(p) {
			return LineRef(LineID(i)), true
		}
	}
	return ShapeRef{}, false
}

// Clear removes all geometry.  Previously returned IDs become invalid.
func (s *Store) Clear() {
	s.points = s.points[:0]
	s.lines = s.lines[:0]
	s.polygons = s.polygons[:0]
}
