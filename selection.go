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
	"slices"
	"strconv"
)

// Defaults for [SelectionTracker].
const (
	DefaultResizeTolerance = 8
	DefaultHandleSize      = 6
)

// SelectionState is the state of a [SelectionTracker].
type SelectionState int

// These are the states of a [SelectionTracker].
const (
	Idle SelectionState = iota
	Selected
	Dragging
)

func (s SelectionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case Dragging:
		return "dragging"
	default:
		return "SelectionState(" + strconv.Itoa(int(s)) + ")"
	}
}

// SelectionTracker holds the selected shapes of a [Store] and moves or
// reshapes them in response to pointer drags.
//
// A drag which starts within ResizeTolerance of a vertex of a selected
// shape moves only that vertex.  Any other drag moves all selected shapes.
type SelectionTracker struct {
	// ResizeTolerance is the distance below which a drag grabs a vertex.
	ResizeTolerance float64

	// HandleSize is the side length of the squares drawn by DrawHandles.
	HandleSize int

	store    *Store
	lines    []LineID
	polygons []PolygonID

	dragging bool
	anchor   Point
	resizing bool
	target   PointID

	dirty bool
}

// NewSelectionTracker returns a tracker for shapes in store, with nothing
// selected.
func NewSelectionTracker(store *Store) *SelectionTracker {
	return &SelectionTracker{
		ResizeTolerance: DefaultResizeTolerance,
		HandleSize:      DefaultHandleSize,
		store:           store,
	}
}

// State returns the current state.
func (t *SelectionTracker) State() SelectionState {
	switch {
	case t.dragging && t.HasSelection():
		return Dragging
	case t.HasSelection():
		return Selected
	default:
		return Idle
	}
}

// SelectLine makes id the only selected shape.
func (t *SelectionTracker) SelectLine(id LineID) {
	t.ClearSelection()
	t.lines = append(t.lines, id)
}

// SelectPolygon makes id the only selected shape.
func (t *SelectionTracker) SelectPolygon(id PolygonID) {
	t.ClearSelection()
	t.polygons = append(t.polygons, id)
}

// AddLine adds id to the selection.
func (t *SelectionTracker) AddLine(id LineID) {
	if !slices.Contains(t.lines, id) {
		t.lines = append(t.lines, id)
	}
}

// AddPolygon adds id to the selection.
func (t *SelectionTracker) AddPolygon(id PolygonID) {
	if !slices.Contains(t.polygons, id) {
		t.polygons = append(t.polygons, id)
	}
}

// SelectAt selects the topmost shape at p, see [Store.Pick], and reports
// whether there was one.  If additive is true the shape is added to the
// current selection, otherwise it replaces it.  A miss without additive
// clears the selection.
func (t *SelectionTracker) SelectAt(p Point, additive bool) bool {
	ref, ok := t.store.Pick(p)
	if !ok {
		if !additive {
			t.ClearSelection()
		}
		return false
	}

	if !additive {
		t.ClearSelection()
	}
	switch ref.Kind {
	case KindLine:
		t.AddLine(LineID(ref.Index))
	case KindPolygon:
		t.AddPolygon(PolygonID(ref.Index))
	}
	return true
}

// ClearSelection deselects everything and abandons any drag.
func (t *SelectionTracker) ClearSelection() {
	t.lines = t.lines[:0]
	t.polygons = t.polygons[:0]
	t.dragging = false
	t.resizing = false
}

// HasSelection reports whether any shape is selected.
func (t *SelectionTracker) HasSelection() bool {
	t.prune()
	return len(t.lines) > 0 || len(t.polygons) > 0
}

// SelectedLines returns a copy of the selected line IDs.
func (t *SelectionTracker) SelectedLines() []LineID {
	t.prune()
	return slices.Clone(t.lines)
}

// SelectedPolygons returns a copy of the selected polygon IDs.
func (t *SelectionTracker) SelectedPolygons() []PolygonID {
	t.prune()
	return slices.Clone(t.polygons)
}

// StartDrag records (x, y) as the drag anchor.  If the anchor is close to
// a vertex of a selected shape, the drag reshapes the shape by moving
// that vertex.  Otherwise the drag moves the whole selection.
// Without a selection there is nothing to drag and the call is ignored.
func (t *SelectionTracker) StartDrag(x, y int) {
	if !t.HasSelection() {
		return
	}
	t.anchor = Point{x, y}
	t.target, t.resizing = t.FindResizePoint(x, y)
	t.dragging = true
}

// UpdateDrag moves the grabbed vertex or the selection by the offset
// from the previous pointer position to (x, y), and makes (x, y) the new
// anchor.  It does nothing unless a drag is in progress and the dragged
// shapes are still in the store.
func (t *SelectionTracker) UpdateDrag(x, y int) {
	if !t.dragging || !t.HasSelection() {
		return
	}

	dx := x - t.anchor.X
	dy := y - t.anchor.Y
	if t.resizing {
		t.store.MovePoint(t.target, dx, dy)
	} else {
		t.store.Translate(t.vertices(), dx, dy)
	}

	t.anchor = Point{x, y}
	t.dirty = true
}

// EndDrag finishes the current drag.
func (t *SelectionTracker) EndDrag() {
	t.dragging = false
	t.resizing = false
}

// FindResizePoint returns the first vertex of a selected shape which is
// closer than ResizeTolerance to (x, y).  Lines are searched before
// polygons, each in selection order, and for a line P1 before P2.
func (t *SelectionTracker) FindResizePoint(x, y int) (PointID, bool) {
	t.prune()
	q := Point{x, y}
	for _, id := range t.lines {
		a, b := t.store.LineVertices(id)
		for _, v := range []PointID{a, b} {
			if t.store.Point(v).DistanceTo(q) < t.ResizeTolerance {
				return v, true
			}
		}
	}
	for _, id := range t.polygons {
		for _, v := range t.store.PolygonVertices(id) {
			if t.store.Point(v).DistanceTo(q) < t.ResizeTolerance {
				return v, true
			}
		}
	}
	return 0, false
}

// Dirty reports whether the selection has been moved since the last call
// to ResetDirty.
func (t *SelectionTracker) Dirty() bool {
	return t.dirty
}

// ResetDirty clears the dirty flag, typically after the moved shapes have
// been committed to the base layer.
func (t *SelectionTracker) ResetDirty() {
	t.dirty = false
}

// DrawHandles outlines a square of side HandleSize around every vertex of
// the selected shapes.
func (t *SelectionTracker) DrawHandles(dst Surface, c Color) {
	half := t.HandleSize / 2
	for _, v := range t.vertices() {
		p := t.store.Point(v)
		x0, y0 := p.X-half, p.Y-half
		x1, y1 := x0+t.HandleSize, y0+t.HandleSize
		for x := x0; x <= x1; x++ {
			dst.SetPixel(x, y0, c)
			dst.SetPixel(x, y1, c)
		}
		for y := y0 + 1; y < y1; y++ {
			dst.SetPixel(x0, y, c)
			dst.SetPixel(x1, y, c)
		}
	}
}

// vertices returns the vertex IDs of all selected shapes.  Shared
// vertices may occur more than once.
func (t *SelectionTracker) vertices() []PointID {
	t.prune()
	var ids []PointID
	for _, id := range t.lines {
		a, b := t.store.LineVertices(id)
		ids = append(ids, a, b)
	}
	for _, id := range t.polygons {
		ids = append(ids, t.store.PolygonVertices(id)...)
	}
	return ids
}

// prune drops selected IDs which the store no longer holds, for example
// after [Undo] or [Store.Clear].
func (t *SelectionTracker) prune() {
	nl, np := t.store.NumLines(), t.store.NumPolygons()
	t.lines = slices.DeleteFunc(t.lines, func(id LineID) bool {
		return id < 0 || int(id) >= nl
	})
	t.polygons = slices.DeleteFunc(t.polygons, func(id PolygonID) bool {
		return id < 0 || int(id) >= np
	})
}
