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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStorePoints(t *testing.T) {
	s := NewStore()
	a := s.AddPoint(Pt(1, 2))
	b := s.AddPoint(Pt(1, 2))
	if a == b {
		t.Fatal("coincident vertices share an ID")
	}

	s.MovePoint(a, 3, -1)
	if s.Point(a) != Pt(4, 1) || s.Point(b) != Pt(1, 2) {
		t.Errorf("MovePoint: a=%v b=%v", s.Point(a), s.Point(b))
	}
	s.SetPoint(b, Pt(9, 9))
	if s.Point(b) != Pt(9, 9) {
		t.Errorf("SetPoint: b=%v", s.Point(b))
	}
}

func TestStoreLines(t *testing.T) {
	s := NewStore()
	l := Line{P1: Pt(0, 0), P2: Pt(10, 0), Color: Red, Style: Dashed}
	id := s.AddLine(l, 3)

	if d := cmp.Diff(l, s.Line(id)); d != "" {
		t.Errorf("Line (-want +got):\n%s", d)
	}
	if s.LineWidth(id) != 3 {
		t.Errorf("LineWidth = %d", s.LineWidth(id))
	}
	if id0 := s.AddLine(l, 0); s.LineWidth(id0) != 1 {
		t.Errorf("width 0 stored as %d", s.LineWidth(id0))
	}

	p1, p2 := s.LineVertices(id)
	s.MovePoint(p2, 0, 5)
	if got := s.Line(id).P2; got != Pt(10, 5) {
		t.Errorf("moving the vertex did not move the line: P2=%v", got)
	}
	if got := s.Line(id).P1; got != s.Point(p1) {
		t.Errorf("P1=%v, vertex at %v", got, s.Point(p1))
	}

	if d := cmp.Diff([]LineID{0, 1}, s.Lines()); d != "" {
		t.Errorf("Lines (-want +got):\n%s", d)
	}
}

func TestStoreSharedVertex(t *testing.T) {
	s := NewStore()
	a := s.AddPoint(Pt(0, 0))
	b := s.AddPoint(Pt(10, 0))
	c := s.AddPoint(Pt(10, 10))
	l1 := s.ConnectLine(a, b, Red, Solid, 1)
	l2 := s.ConnectLine(b, c, Red, Solid, 1)

	s.MovePoint(b, 5, 5)
	if s.Line(l1).P2 != Pt(15, 5) || s.Line(l2).P1 != Pt(15, 5) {
		t.Errorf("shared vertex not moved for both lines: %v %v", s.Line(l1), s.Line(l2))
	}

	// each distinct vertex moves once, however often it is listed
	s.Translate([]PointID{a, b, b, c, b}, 1, 2)
	want := []Point{{1, 2}, {16, 7}, {11, 12}}
	got := []Point{s.Point(a), s.Point(b), s.Point(c)}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Translate (-want +got):\n%s", d)
	}
}

func TestStoreConnectInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ConnectLine with an unknown vertex did not panic")
		}
	}()
	s := NewStore()
	a := s.AddPoint(Pt(0, 0))
	s.ConnectLine(a, a+1, Red, Solid, 1)
}

func TestStoreRemoveLastLine(t *testing.T) {
	s := NewStore()
	if s.RemoveLastLine() {
		t.Error("RemoveLastLine on an empty store reported success")
	}
	first := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(1, 1)}, 1)
	s.AddLine(Line{P1: Pt(5, 5), P2: Pt(6, 6)}, 1)

	if !s.RemoveLastLine() {
		t.Fatal("RemoveLastLine failed")
	}
	if s.NumLines() != 1 {
		t.Fatalf("%d lines left, want 1", s.NumLines())
	}
	if s.Line(first).P2 != Pt(1, 1) {
		t.Error("the wrong line was removed")
	}
}

func TestStorePolygons(t *testing.T) {
	s := NewStore()
	pg := Triangle(Pt(0, 0), Pt(10, 10))
	id := s.AddPolygon(pg, Blue, Dotted, 2)

	if d := cmp.Diff(pg, s.Polygon(id)); d != "" {
		t.Errorf("Polygon (-want +got):\n%s", d)
	}
	c, style, w := s.PolygonStroke(id)
	if c != Blue || style != Dotted || w != 2 {
		t.Errorf("PolygonStroke = %08x %v %d", uint32(c), style, w)
	}

	// the returned slices are copies
	got := s.Polygon(id)
	got.Points[0] = Pt(99, 99)
	ids := s.PolygonVertices(id)
	ids[0] = ids[1]
	if s.Polygon(id).Points[0] != pg.Points[0] {
		t.Error("Polygon returned shared storage")
	}
	if s.PolygonVertices(id)[0] == s.PolygonVertices(id)[1] {
		t.Error("PolygonVertices returned shared storage")
	}

	s.Translate(s.PolygonVertices(id), -1, 1)
	if s.Polygon(id).Points[1] != Pt(9, 11) {
		t.Errorf("Translate: %v", s.Polygon(id).Points)
	}
	if s.NumPolygons() != 1 || len(s.Polygons()) != 1 {
		t.Errorf("polygon count %d", s.NumPolygons())
	}
}

func TestStorePick(t *testing.T) {
	s := NewStore()
	l0 := s.AddLine(Line{P1: Pt(0, 50), P2: Pt(100, 50)}, 1)
	l1 := s.AddLine(Line{P1: Pt(0, 52), P2: Pt(100, 52)}, 1)
	p0 := s.AddPolygon(Rectangle(Pt(10, 10), Pt(40, 40)), Red, Solid, 1)
	p1 := s.AddPolygon(Rectangle(Pt(30, 30), Pt(60, 60)), Red, Solid, 1)

	cases := []struct {
		p    Point
		want ShapeRef
		ok   bool
	}{
		{Pt(20, 20), PolygonRef(p0), true},
		{Pt(35, 35), PolygonRef(p1), true}, // newer polygon on top
		{Pt(45, 50), PolygonRef(p1), true}, // polygons before lines
		{Pt(80, 51), LineRef(l1), true},    // newer line on top
		{Pt(80, 47), LineRef(l0), true},    // only l0 within reach
		{Pt(80, 80), ShapeRef{}, false},
	}
	for _, tc := range cases {
		got, ok := s.Pick(tc.p)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Pick(%v) = %v, %t, want %v, %t", tc.p, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStoreShape(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(3, 4), Color: Red}, 1)
	p := s.AddPolygon(Rectangle(Pt(0, 0), Pt(2, 2)), Red, Solid, 1)

	if sh, ok := s.Shape(LineRef(l)).(Line); !ok || sh.P2 != Pt(3, 4) {
		t.Errorf("Shape(line) = %v", s.Shape(LineRef(l)))
	}
	if sh, ok := s.Shape(PolygonRef(p)).(Polygon); !ok || len(sh.Points) != 4 {
		t.Errorf("Shape(polygon) = %v", s.Shape(PolygonRef(p)))
	}
	for _, ref := range []ShapeRef{{}, LineRef(5), PolygonRef(-1)} {
		if sh := s.Shape(ref); sh != nil {
			t.Errorf("Shape(%v) = %v, want nil", ref, sh)
		}
	}

	if n := len(s.Vertices(LineRef(l))); n != 2 {
		t.Errorf("line has %d vertices", n)
	}
	if n := len(s.Vertices(PolygonRef(p))); n != 4 {
		t.Errorf("polygon has %d vertices", n)
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.AddLine(Line{P1: Pt(0, 0), P2: Pt(3, 4)}, 1)
	s.AddPolygon(Rectangle(Pt(0, 0), Pt(2, 2)), Red, Solid, 1)
	s.Clear()
	if s.NumLines() != 0 || s.NumPolygons() != 0 {
		t.Error("Clear left shapes behind")
	}
	if id := s.AddPoint(Pt(1, 1)); id != 0 {
		t.Errorf("first vertex after Clear has ID %d", id)
	}
}
