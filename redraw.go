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

// Redraw clears dst and draws every line and then every polygon outline
// of store onto it, oldest first, each at the width it was stored with.
//
// The cap style is taken from lines; the width setting of lines is not
// changed.
//
// If dst is a [DoubleBuffered] surface, the scene is drawn into the base
// layer and the preview is reset to match it, so that the result
// survives the next [DoubleBuffered.StartPreview].
func Redraw(dst Surface, store *Store, lines *LineRasterizer) {
	if db, ok := dst.(*DoubleBuffered); ok {
		dst = db.Base()
		defer db.CancelPreview()
	}
	dst.Clear()

	r := *lines
	r.dst = dst
	for _, id := range store.Lines() {
		r.SetLineWidth(store.LineWidth(id))
		r.Rasterize(store.Line(id))
	}

	pr := NewPolygonRasterizer(&r)
	for _, id := range store.Polygons() {
		c, style, width := store.PolygonStroke(id)
		pr.Rasterize(store.Polygon(id), c, style, width)
	}
}

// Undo removes the most recently added line from store and redraws dst.
// It reports whether there was a line to remove; if not, dst is left
// unchanged.
func Undo(dst Surface, store *Store, lines *LineRasterizer) bool {
	if !store.RemoveLastLine() {
		return false
	}
	Redraw(dst, store, lines)
	return true
}
