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

// FloodFiller replaces 4-connected regions of equal color.
type FloodFiller struct {
	dst   Surface
	queue []Point
}

// NewFloodFiller returns a flood filler which operates on dst.
func NewFloodFiller(dst Surface) *FloodFiller {
	return &FloodFiller{dst: dst}
}

// FloodFill replaces the 4-connected region of pixels which have the same
// color as (x, y) with c.  If (x, y) already has color c, nothing is
// changed.
//
// Pixels are visited in breadth-first order.  There is no visited set: a
// pixel leaves the region as soon as it is painted, so it is never
// painted twice.  The queue may hold up to four entries per pixel.
func (f *FloodFiller) FloodFill(x, y int, c Color) {
	target := f.dst.GetPixel(x, y)
	if target == c {
		return
	}

	w, h := f.dst.Width(), f.dst.Height()
	queue := append(f.queue[:0], Point{x, y})
	painted := 0
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
			continue
		}
		if f.dst.GetPixel(p.X, p.Y) != target {
			continue
		}
		f.dst.SetPixel(p.X, p.Y, c)
		painted++
		queue = append(queue,
			Point{p.X + 1, p.Y},
			Point{p.X - 1, p.Y},
			Point{p.X, p.Y + 1},
			Point{p.X, p.Y - 1})
	}
	Logger().Debug("flood fill", "x", x, "y", y, "painted", painted, "queued", len(queue))
	f.queue = queue[:0]
}
