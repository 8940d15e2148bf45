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
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPoint(t *testing.T) {
	p := Pt(3, 4)
	p.Translate(-3, 2)
	if p != (Point{0, 6}) {
		t.Errorf("Translate gave %v", p)
	}
	if d := Pt(0, 0).DistanceTo(Pt(3, 4)); d != 5 {
		t.Errorf("DistanceTo = %g, want 5", d)
	}
	a, b := Pt(1, 1), Pt(-2, -3)
	if a.DistanceTo(b) != 5 || b.DistanceTo(a) != 5 {
		t.Errorf("DistanceTo is not symmetric: %g, %g", a.DistanceTo(b), b.DistanceTo(a))
	}
}

func TestLineNear(t *testing.T) {
	l := Line{P1: Pt(0, 0), P2: Pt(10, 0)}
	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(5, 4), true},
		{Pt(5, 6), false},
		{Pt(5, 5), false}, // the tolerance is exclusive
		{Pt(5, -4), true},
		{Pt(13, 0), true}, // beyond P2, distance 3
		{Pt(16, 0), false},
		{Pt(-3, 3), true}, // distance to P1 is 4.24
		{Pt(-4, 4), false},
	}
	for _, tc := range cases {
		if got := l.HitTest(tc.p); got != tc.want {
			t.Errorf("HitTest(%v) = %t, want %t", tc.p, got, tc.want)
		}
	}
}

func TestLineNearDegenerate(t *testing.T) {
	l := Line{P1: Pt(7, 7), P2: Pt(7, 7)}
	if !l.HitTest(Pt(10, 10)) {
		t.Error("point at distance 4.24 not selected")
	}
	if l.HitTest(Pt(7, 12)) {
		t.Error("point at distance 5 selected")
	}
	if !l.Near(Pt(7, 12), 5.5) {
		t.Error("custom tolerance ignored")
	}
}

func TestShapeEdges(t *testing.T) {
	var s Shape = Line{P1: Pt(1, 2), P2: Pt(3, 4)}
	if d := cmp.Diff([]Segment{{Pt(1, 2), Pt(3, 4)}}, s.Edges()); d != "" {
		t.Errorf("line edges (-want +got):\n%s", d)
	}

	s = Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 3}}}
	want := []Segment{
		{Pt(0, 0), Pt(4, 0)},
		{Pt(4, 0), Pt(4, 3)},
		{Pt(4, 3), Pt(0, 0)},
	}
	if d := cmp.Diff(want, s.Edges()); d != "" {
		t.Errorf("polygon edges (-want +got):\n%s", d)
	}

	if e := (Polygon{Points: []Point{{1, 1}}}).Edges(); e != nil {
		t.Errorf("single point polygon has edges %v", e)
	}
}

func TestColor(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != 0xFF123456 {
		t.Errorf("RGB = %08x", uint32(c))
	}
	if got := c.NRGBA(); got != (color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}) {
		t.Errorf("NRGBA = %v", got)
	}
	if got := toColor(color.Gray{Y: 0x80}); got != 0xFF808080 {
		t.Errorf("toColor(gray) = %08x", uint32(got))
	}
	if got := toColor(Magenta); got != Magenta {
		t.Errorf("toColor(Magenta) = %08x", uint32(got))
	}
}
