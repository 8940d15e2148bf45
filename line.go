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
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// LineRasterizer converts lines into pixel writes on a surface.
// Lines are drawn without anti-aliasing; later lines overwrite earlier
// ones where they overlap.
//
// A LineRasterizer is not safe for concurrent use.
type LineRasterizer struct {
	// Cap selects the end point decoration of thick lines.  Round caps are
	// filled discs of radius width/2, square caps are filled squares of
	// the same half-size, butt caps add nothing.  Thin lines have no caps.
	Cap graphics.LineCapStyle

	dst   Surface
	width int
}

// NewLineRasterizer returns a rasterizer which draws onto dst with width
// 1 and round caps.
func NewLineRasterizer(dst Surface) *LineRasterizer {
	return &LineRasterizer{
		Cap:   graphics.LineCapRound,
		dst:   dst,
		width: 1,
	}
}

// Surface returns the surface the rasterizer draws onto.
func (r *LineRasterizer) Surface() Surface {
	return r.dst
}

// SetLineWidth sets the width used by all subsequent calls.
// Widths below 1 are clamped to 1.
func (r *LineRasterizer) SetLineWidth(w int) {
	r.width = max(1, w)
}

// LineWidth returns the current line width.
func (r *LineRasterizer) LineWidth() int {
	return r.width
}

// Rasterize draws l at the current width.
func (r *LineRasterizer) Rasterize(l Line) {
	r.segment(l.P1, l.P2, l.Color, l.Style)
}

// RasterizeCanvas draws the given lines in order.
func (r *LineRasterizer) RasterizeCanvas(lines []Line) {
	for _, l := range lines {
		r.Rasterize(l)
	}
}

// RasterizePolyline draws the open chain through pts.  A single point is
// drawn as a zero-length line.
func (r *LineRasterizer) RasterizePolyline(pts []Point, c Color, style LineStyle) {
	switch len(pts) {
	case 0:
		return
	case 1:
		r.segment(pts[0], pts[0], c, style)
		return
	}
	for i := 1; i < len(pts); i++ {
		r.segment(pts[i-1], pts[i], c, style)
	}
}

func (r *LineRasterizer) segment(a, b Point, c Color, style LineStyle) {
	if r.width <= 1 {
		r.thin(a.X, a.Y, b.X, b.Y, c, style)
	} else {
		r.thick(a.X, a.Y, b.X, b.Y, c, style)
	}
}

// thin draws a one pixel wide line by direct slope-intercept evaluation.
//
// The slope and intercept are single precision, and every sample is
// rounded half-up.  The pattern position is the distance along the major
// axis from the smaller end point.
func (r *LineRasterizer) thin(x1, y1, x2, y2 int, c Color, style LineStyle) {
	if x1 == x2 {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			if style.Accepts(y - y1) {
				r.plot(x1, y, c)
			}
		}
		return
	}

	k := float32(y2-y1) / float32(x2-x1)
	q := float32(y1) - float32(k*float32(x1))

	if abs32(k) < 1 {
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			y := round32(float32(k*float32(x)) + q)
			if style.Accepts(x - x1) {
				r.plot(x, y, c)
			}
		}
	} else {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			x := round32((float32(y) - q) / k)
			if style.Accepts(y - y1) {
				r.plot(x, y, c)
			}
		}
	}
}

// thick draws width parallel copies of the line, offset perpendicular to
// the major axis, and then adds the caps.
//
// The offset never changes the major-axis coordinate of the start point,
// so all copies share one pattern origin and dashes line up across the
// stroke.
func (r *LineRasterizer) thick(x1, y1, x2, y2 int, c Color, style LineStyle) {
	half := r.width / 2
	if iabs(x2-x1) > iabs(y2-y1) {
		for i := -half; i <= half; i++ {
			r.thin(x1, y1+i, x2, y2+i, c, style)
		}
	} else {
		for i := -half; i <= half; i++ {
			r.thin(x1+i, y1, x2+i, y2, c, style)
		}
	}

	switch r.Cap {
	case graphics.LineCapRound:
		r.disc(x1, y1, half, c)
		r.disc(x2, y2, half, c)
	case graphics.LineCapSquare:
		r.square(x1, y1, half, c)
		r.square(x2, y2, half, c)
	}
}

// disc fills all pixels with dx²+dy² ≤ radius² around (cx, cy).
func (r *LineRasterizer) disc(cx, cy, radius int, c Color) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				r.plot(cx+dx, cy+dy, c)
			}
		}
	}
}

func (r *LineRasterizer) square(cx, cy, half int, c Color) {
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			r.plot(x, y, c)
		}
	}
}

// plot skips pixels outside the surface, so that geometry extending past
// the edge does not flood the debug log.
func (r *LineRasterizer) plot(x, y int, c Color) {
	if x < 0 || y < 0 || x >= r.dst.Width() || y >= r.dst.Height() {
		return
	}
	r.dst.SetPixel(x, y, c)
}

// round32 rounds half-up, matching floor(v + 0.5).
func round32(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
