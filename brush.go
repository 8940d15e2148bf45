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

// Brush paints freehand strokes as chains of solid segments.
//
// An eraser is a brush which paints in the background color.
type Brush struct {
	lines *LineRasterizer
	color Color
	last  Point
	down  bool
}

// NewBrush returns a brush which draws with lines, at the width of lines.
func NewBrush(lines *LineRasterizer) *Brush {
	return &Brush{lines: lines}
}

// Press starts a stroke at p and paints a single dot there.
//
// If the brush draws onto a [DoubleBuffered] surface, a preview is
// started and the stroke is committed by [Brush.Release].
func (b *Brush) Press(p Point, c Color) {
	if db, ok := b.lines.Surface().(*DoubleBuffered); ok {
		db.StartPreview()
	}
	b.color = c
	b.last = p
	b.down = true
	b.lines.segment(p, p, c, Solid)
}

// DragTo continues the stroke from the previous pointer position to p.
// Without a preceding Press nothing is drawn.
func (b *Brush) DragTo(p Point) {
	if !b.down {
		return
	}
	b.lines.segment(b.last, p, b.color, Solid)
	b.last = p
}

// Release ends the stroke.
func (b *Brush) Release() {
	if !b.down {
		return
	}
	b.down = false
	if db, ok := b.lines.Surface().(*DoubleBuffered); ok {
		db.EndPreview()
	}
}

// Active reports whether a stroke is in progress.
func (b *Brush) Active() bool {
	return b.down
}
