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

package testcases

import (
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch"
)

// largeCases contain shapes with bounding boxes > 65536 pixels, to
// exercise the active edge list in the polygon filler, and flood fills
// over large regions.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Width:  512,
		Height: 512,
		Ops: []Operation{FillPolygon{
			Polygon: sketch.Rectangle(pt(50, 50), pt(461, 461)),
			Color:   sketch.White,
			Rule:    sketch.NonZero,
		}},
	},
	{
		Name:   "large_star_evenodd",
		Width:  512,
		Height: 512,
		Ops: []Operation{FillPolygon{
			Polygon: star(256, 256, 230),
			Color:   sketch.White,
			Rule:    sketch.EvenOdd,
		}},
	},
	{
		Name:   "large_diamond",
		Width:  512,
		Height: 512,
		Ops: []Operation{FillPolygon{
			Polygon: diamond(256, 256, 180),
			Color:   sketch.White,
			Rule:    sketch.NonZero,
		}},
	},
	{
		Name:   "large_clipped",
		Width:  512,
		Height: 512,
		Ops: []Operation{FillPolygon{
			Polygon: sketch.Rectangle(pt(-100, 100), pt(611, 399)),
			Color:   sketch.White,
			Rule:    sketch.NonZero,
		}},
	},
	{
		Name:   "large_flood",
		Width:  512,
		Height: 512,
		Ops:    []Operation{FloodFill{At: pt(256, 256), Color: sketch.Gray}},
	},
	{
		Name:   "large_flood_grid",
		Width:  512,
		Height: 512,
		Ops:    append(grid(512, 512, 32), FloodFill{At: pt(1, 1), Color: sketch.Gray}),
	},
	{
		Name:   "large_thick_circle",
		Width:  512,
		Height: 512,
		Ops: []Operation{DrawPolygon{
			Polygon: sketch.Circle(pt(256, 256), pt(456, 256)),
			Color:   sketch.White,
			Width:   9,
		}},
	},
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r int) sketch.Polygon {
	return sketch.Polygon{Points: []sketch.Point{
		pt(cx, cy-r),
		pt(cx+r, cy),
		pt(cx, cy+r),
		pt(cx-r, cy),
	}}
}

// grid draws dashed grid lines every step pixels.  The gaps in the dashes
// connect all cells, so that a single flood fill has to visit the whole
// canvas through many narrow passages.
func grid(width, height, step int) []Operation {
	var ops []Operation
	for x := step; x < width; x += step {
		ops = append(ops, DrawLine{
			Line: line(x, 0, x, height-1, sketch.Dashed),
			Cap:  graphics.LineCapButt,
		})
	}
	for y := step; y < height; y += step {
		ops = append(ops, DrawLine{
			Line: line(0, y, width-1, y, sketch.Dashed),
			Cap:  graphics.LineCapButt,
		})
	}
	return ops
}
