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

func TestSelectionSingle(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(10, 0)}, 1)
	p := s.AddPolygon(Rectangle(Pt(20, 20), Pt(30, 30)), Red, Solid, 1)

	tr := NewSelectionTracker(s)
	if tr.HasSelection() || tr.State() != Idle {
		t.Fatal("new tracker has a selection")
	}

	tr.SelectLine(l)
	tr.SelectPolygon(p)
	if len(tr.SelectedLines()) != 0 {
		t.Error("SelectPolygon kept the selected line")
	}
	if d := cmp.Diff([]PolygonID{p}, tr.SelectedPolygons()); d != "" {
		t.Errorf("SelectedPolygons (-want +got):\n%s", d)
	}

	tr.SelectLine(l)
	if d := cmp.Diff([]LineID{l}, tr.SelectedLines()); d != "" {
		t.Errorf("SelectedLines (-want +got):\n%s", d)
	}
	if len(tr.SelectedPolygons()) != 0 {
		t.Error("SelectLine kept the selected polygon")
	}

	// the returned slices are copies
	got := tr.SelectedLines()
	got[0] = 42
	if tr.SelectedLines()[0] != l {
		t.Error("SelectedLines returned shared storage")
	}

	tr.ClearSelection()
	if tr.HasSelection() {
		t.Error("ClearSelection left a selection")
	}
}

func TestSelectionStates(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(40, 0)}, 1)
	tr := NewSelectionTracker(s)

	steps := []struct {
		name string
		do   func()
		want SelectionState
	}{
		{"select", func() { tr.SelectLine(l) }, Selected},
		{"press", func() { tr.StartDrag(20, 0) }, Dragging},
		{"move", func() { tr.UpdateDrag(21, 0) }, Dragging},
		{"release", tr.EndDrag, Selected},
		{"press again", func() { tr.StartDrag(20, 0) }, Dragging},
		{"clear", tr.ClearSelection, Idle},
	}
	for _, step := range steps {
		step.do()
		if got := tr.State(); got != step.want {
			t.Errorf("after %s: state %v, want %v", step.name, got, step.want)
		}
	}
	if s := SelectionState(9).String(); s != "SelectionState(9)" {
		t.Errorf("String() = %q", s)
	}
}

func TestSelectionDragMove(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(20, 0)}, 1)
	tr := NewSelectionTracker(s)
	tr.SelectLine(l)

	x0, y0 := 10, 0 // 10 pixels from both end points
	tr.StartDrag(x0, y0)
	tr.UpdateDrag(x0+3, y0+2)

	want := Line{P1: Pt(3, 2), P2: Pt(23, 2)}
	if d := cmp.Diff(want, s.Line(l)); d != "" {
		t.Errorf("line after drag (-want +got):\n%s", d)
	}
	if !tr.Dirty() {
		t.Error("drag did not set the dirty flag")
	}

	// deltas are relative to the previous pointer position
	tr.UpdateDrag(x0+4, y0+2)
	if got := s.Line(l).P1; got != Pt(4, 2) {
		t.Errorf("P1 after second step %v, want (4, 2)", got)
	}

	tr.EndDrag()
	tr.ResetDirty()
	tr.UpdateDrag(100, 100)
	if got := s.Line(l).P1; got != Pt(4, 2) || tr.Dirty() {
		t.Error("UpdateDrag after EndDrag moved the selection")
	}
}

func TestSelectionUpdateWithoutStart(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(20, 0)}, 1)
	tr := NewSelectionTracker(s)
	tr.SelectLine(l)

	tr.UpdateDrag(5, 5)
	if got := s.Line(l); got.P1 != Pt(0, 0) || got.P2 != Pt(20, 0) {
		t.Errorf("line moved to %v", got)
	}
	if tr.Dirty() {
		t.Error("dirty flag set without a drag")
	}
}

func TestSelectionDragPolygon(t *testing.T) {
	s := NewStore()
	p := s.AddPolygon(Rectangle(Pt(10, 10), Pt(50, 30)), Red, Solid, 1)
	tr := NewSelectionTracker(s)
	tr.SelectPolygon(p)

	tr.StartDrag(30, 20)
	tr.UpdateDrag(25, 25)
	tr.EndDrag()

	want := Rectangle(Pt(5, 15), Pt(45, 35))
	if d := cmp.Diff(want, s.Polygon(p)); d != "" {
		t.Errorf("polygon after drag (-want +got):\n%s", d)
	}
}

func TestSelectionResize(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(20, 0)}, 1)
	tr := NewSelectionTracker(s)
	tr.SelectLine(l)

	tr.StartDrag(1, 1)
	tr.UpdateDrag(5, 6)

	want := Line{P1: Pt(4, 5), P2: Pt(20, 0)}
	if d := cmp.Diff(want, s.Line(l)); d != "" {
		t.Errorf("line after resize (-want +got):\n%s", d)
	}
}

func TestSelectionResizeCoincident(t *testing.T) {
	// two lines meet at (10, 10) with separate vertices: reshaping one
	// must not touch the other
	s := NewStore()
	a := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(10, 10)}, 1)
	b := s.AddLine(Line{P1: Pt(10, 10), P2: Pt(20, 0)}, 1)

	tr := NewSelectionTracker(s)
	tr.SelectLine(b)
	tr.StartDrag(10, 10)
	tr.UpdateDrag(10, 20)

	if got := s.Line(b).P1; got != Pt(10, 20) {
		t.Errorf("selected line P1 = %v, want (10, 20)", got)
	}
	if got := s.Line(a).P2; got != Pt(10, 10) {
		t.Errorf("coincident vertex of the other line moved to %v", got)
	}
}

func TestSelectionMoveSharedVertex(t *testing.T) {
	s := NewStore()
	v0 := s.AddPoint(Pt(0, 0))
	v1 := s.AddPoint(Pt(20, 0))
	v2 := s.AddPoint(Pt(20, 20))
	a := s.ConnectLine(v0, v1, Red, Solid, 1)
	b := s.ConnectLine(v1, v2, Red, Solid, 1)

	tr := NewSelectionTracker(s)
	tr.SelectLine(a)
	tr.AddLine(b)
	tr.AddLine(b) // no duplicates
	if n := len(tr.SelectedLines()); n != 2 {
		t.Fatalf("%d lines selected, want 2", n)
	}

	tr.StartDrag(10, 10)
	tr.UpdateDrag(13, 12)

	want := []Point{{3, 2}, {23, 2}, {23, 22}}
	got := []Point{s.Point(v0), s.Point(v1), s.Point(v2)}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("vertices after move (-want +got):\n%s", d)
	}
}

func TestFindResizePoint(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(0, 0), P2: Pt(6, 0)}, 1)
	p := s.AddPolygon(Rectangle(Pt(30, 30), Pt(40, 40)), Red, Solid, 1)
	p1, p2 := s.LineVertices(l)
	pv := s.PolygonVertices(p)

	tr := NewSelectionTracker(s)
	tr.SelectLine(l)
	tr.AddPolygon(p)

	cases := []struct {
		x, y int
		want PointID
		ok   bool
	}{
		{3, 0, p1, true},  // both ends in reach, P1 first
		{9, 0, p2, true},  // only P2 in reach
		{-8, 0, 0, false}, // distance 8 is not in reach
		{35, 20, 0, false},
		{41, 41, pv[2], true},
		{30, 39, pv[3], true},
	}
	for _, tc := range cases {
		got, ok := tr.FindResizePoint(tc.x, tc.y)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("FindResizePoint(%d, %d) = %d, %t, want %d, %t",
				tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}

	tr.ResizeTolerance = 3
	if _, ok := tr.FindResizePoint(41, 43); ok {
		t.Error("ResizeTolerance ignored")
	}
}

func TestSelectAt(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(0, 50), P2: Pt(100, 50)}, 1)
	p := s.AddPolygon(Rectangle(Pt(10, 10), Pt(40, 40)), Red, Solid, 1)
	tr := NewSelectionTracker(s)

	if !tr.SelectAt(Pt(20, 20), false) {
		t.Fatal("polygon not found")
	}
	if !tr.SelectAt(Pt(70, 52), true) {
		t.Fatal("line not found")
	}
	if d := cmp.Diff([]LineID{l}, tr.SelectedLines()); d != "" {
		t.Errorf("SelectedLines (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]PolygonID{p}, tr.SelectedPolygons()); d != "" {
		t.Errorf("SelectedPolygons (-want +got):\n%s", d)
	}

	// a miss with additive keeps the selection
	if tr.SelectAt(Pt(90, 90), true) || !tr.HasSelection() {
		t.Error("additive miss changed the selection")
	}

	// a hit without additive replaces it
	tr.SelectAt(Pt(70, 48), false)
	if len(tr.SelectedPolygons()) != 0 || len(tr.SelectedLines()) != 1 {
		t.Error("non-additive hit did not replace the selection")
	}

	// a miss without additive clears it
	if tr.SelectAt(Pt(90, 90), false) || tr.HasSelection() {
		t.Error("non-additive miss kept the selection")
	}
}

func TestDrawHandles(t *testing.T) {
	s := NewStore()
	l := s.AddLine(Line{P1: Pt(10, 10), P2: Pt(30, 10)}, 1)
	tr := NewSelectionTracker(s)
	tr.SelectLine(l)

	r := NewRaster(40, 40)
	tr.DrawHandles(r, Red)

	// a 6×6 handle spans 7 pixels per side, with a hollow centre
	for _, c := range []Point{{10, 10}, {30, 10}} {
		for dy := -3; dy <= 3; dy++ {
			for dx := -3; dx <= 3; dx++ {
				border := dx == -3 || dx == 3 || dy == -3 || dy == 3
				got := r.GetPixel(c.X+dx, c.Y+dy) == Red
				if got != border {
					t.Errorf("pixel (%d, %d) painted=%t, want %t", c.X+dx, c.Y+dy, got, border)
				}
			}
		}
	}
	if n := len(painted(r, Red)); n != 2*24 {
		t.Errorf("%d handle pixels, want 48", n)
	}

	// no selection, no handles
	r2 := NewRaster(40, 40)
	tr.ClearSelection()
	tr.DrawHandles(r2, Red)
	if n := len(painted(r2, Red)); n != 0 {
		t.Errorf("%d handle pixels without selection", n)
	}
}

func TestSelectionWithoutSelection(t *testing.T) {
	s := NewStore()
	s.AddLine(Line{P1: Pt(0, 0), P2: Pt(20, 0)}, 1)
	tr := NewSelectionTracker(s)

	tr.StartDrag(10, 0)
	if got := tr.State(); got != Idle {
		t.Errorf("state after StartDrag without selection = %v, want idle", got)
	}
	tr.UpdateDrag(15, 5)
	if tr.Dirty() {
		t.Error("UpdateDrag without selection set the dirty flag")
	}
	if got := s.Line(0).P1; got != Pt(0, 0) {
		t.Errorf("unselected line moved to %v", got)
	}
}

func TestSelectionStaleIDs(t *testing.T) {
	cases := []struct {
		name   string
		choose func(*Store, *SelectionTracker)
		remove func(*Store)
	}{
		{
			name: "undo",
			choose: func(s *Store, tr *SelectionTracker) {
				tr.SelectLine(s.AddLine(Line{P1: Pt(2, 2), P2: Pt(20, 2)}, 1))
			},
			remove: func(s *Store) {
				r := NewRaster(32, 32)
				Undo(r, s, NewLineRasterizer(r))
			},
		},
		{
			name: "clear",
			choose: func(s *Store, tr *SelectionTracker) {
				tr.SelectPolygon(s.AddPolygon(Rectangle(Pt(2, 2), Pt(20, 20)), Red, Solid, 1))
			},
			remove: func(s *Store) { s.Clear() },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			tr := NewSelectionTracker(s)
			tc.choose(s, tr)
			tc.remove(s)

			if tr.HasSelection() || tr.State() != Idle {
				t.Error("removed shape is still selected")
			}
			tr.StartDrag(2, 2)
			tr.UpdateDrag(5, 5)
			tr.EndDrag()
			if tr.Dirty() {
				t.Error("dragging a removed shape set the dirty flag")
			}
			if _, ok := tr.FindResizePoint(2, 2); ok {
				t.Error("FindResizePoint found a vertex of a removed shape")
			}

			r := NewRaster(32, 32)
			tr.DrawHandles(r, Red)
			if n := len(painted(r, Red)); n != 0 {
				t.Errorf("%d handle pixels drawn for a removed shape", n)
			}
		})
	}
}

func TestSelectionRemovedDuringDrag(t *testing.T) {
	s := NewStore()
	keep := s.AddLine(Line{P1: Pt(0, 10), P2: Pt(20, 10)}, 1)
	gone := s.AddLine(Line{P1: Pt(0, 20), P2: Pt(20, 20)}, 1)
	tr := NewSelectionTracker(s)
	tr.SelectLine(keep)
	tr.AddLine(gone)

	tr.StartDrag(10, 15)
	s.RemoveLastLine()
	tr.UpdateDrag(11, 15)

	if got := s.Line(keep); got.P1 != Pt(1, 10) || got.P2 != Pt(21, 10) {
		t.Errorf("remaining line at %v-%v, want (1, 10)-(21, 10)", got.P1, got.P2)
	}
	if d := cmp.Diff([]LineID{keep}, tr.SelectedLines()); d != "" {
		t.Errorf("SelectedLines (-want +got):\n%s", d)
	}
}
