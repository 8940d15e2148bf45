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

import "seehuhn.de/go/sketch"

var floodCases = []TestCase{
	{
		Name:   "empty_canvas",
		Width:  32,
		Height: 32,
		Ops:    []Operation{FloodFill{At: pt(16, 16), Color: sketch.Gray}},
	},
	{
		Name:   "inside_rectangle",
		Width:  48,
		Height: 48,
		Ops: []Operation{
			DrawPolygon{
				Polygon: sketch.Rectangle(pt(8, 8), pt(39, 39)),
				Color:   sketch.White,
				Width:   1,
			},
			FloodFill{At: pt(20, 20), Color: sketch.Gray},
		},
	},
	{
		Name:   "outside_rectangle",
		Width:  48,
		Height: 48,
		Ops: []Operation{
			DrawPolygon{
				Polygon: sketch.Rectangle(pt(8, 8), pt(39, 39)),
				Color:   sketch.White,
				Width:   1,
			},
			FloodFill{At: pt(2, 2), Color: sketch.Gray},
		},
	},
	{
		// 4-connectivity does not leak through the corners of a
		// one pixel diagonal
		Name:   "diagonal_barrier",
		Width:  32,
		Height: 32,
		Ops: []Operation{
			DrawLine{Line: line(0, 31, 31, 0, sketch.Solid)},
			FloodFill{At: pt(2, 2), Color: sketch.Gray},
		},
	},
	{
		// gaps in a dotted outline let the fill escape
		Name:   "dotted_leak",
		Width:  48,
		Height: 48,
		Ops: []Operation{
			DrawPolygon{
				Polygon: sketch.Rectangle(pt(8, 8), pt(39, 39)),
				Color:   sketch.White,
				Style:   sketch.Dotted,
				Width:   1,
			},
			FloodFill{At: pt(20, 20), Color: sketch.Gray},
		},
	},
	{
		Name:   "same_color",
		Width:  32,
		Height: 32,
		Ops: []Operation{
			DrawLine{Line: line(4, 16, 27, 16, sketch.Solid)},
			FloodFill{At: pt(10, 16), Color: sketch.White},
		},
	},
}
