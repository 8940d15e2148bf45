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

var thickCases = []TestCase{
	{
		Name:   "horizontal_w5_round",
		Width:  48,
		Height: 24,
		Ops: []Operation{DrawLine{
			Line:  line(8, 12, 39, 12, sketch.Solid),
			Width: 5,
			Cap:   graphics.LineCapRound,
		}},
	},
	{
		Name:   "horizontal_w5_butt",
		Width:  48,
		Height: 24,
		Ops: []Operation{DrawLine{
			Line:  line(8, 12, 39, 12, sketch.Solid),
			Width: 5,
			Cap:   graphics.LineCapButt,
		}},
	},
	{
		Name:   "horizontal_w5_square",
		Width:  48,
		Height: 24,
		Ops: []Operation{DrawLine{
			Line:  line(8, 12, 39, 12, sketch.Solid),
			Width: 5,
			Cap:   graphics.LineCapSquare,
		}},
	},
	{
		Name:   "steep_w4",
		Width:  48,
		Height: 48,
		Ops: []Operation{DrawLine{
			Line:  line(12, 6, 30, 41, sketch.Solid),
			Width: 4,
			Cap:   graphics.LineCapRound,
		}},
	},
	{
		// dashes line up across all rows of the stroke
		Name:   "dashed_w7",
		Width:  64,
		Height: 32,
		Ops: []Operation{DrawLine{
			Line:  line(6, 16, 57, 16, sketch.Dashed),
			Width: 7,
			Cap:   graphics.LineCapButt,
		}},
	},
	{
		Name:   "dotted_diagonal_w3",
		Width:  48,
		Height: 48,
		Ops: []Operation{DrawLine{
			Line:  line(6, 6, 41, 41, sketch.Dotted),
			Width: 3,
			Cap:   graphics.LineCapRound,
		}},
	},
	{
		Name:   "point_w9",
		Width:  24,
		Height: 24,
		Ops: []Operation{DrawLine{
			Line:  line(12, 12, 12, 12, sketch.Solid),
			Width: 9,
			Cap:   graphics.LineCapRound,
		}},
	},
	{
		Name:   "triangle_w3",
		Width:  64,
		Height: 64,
		Ops: []Operation{DrawPolygon{
			Polygon: sketch.Triangle(pt(8, 8), pt(55, 55)),
			Color:   sketch.White,
			Style:   sketch.Solid,
			Width:   3,
		}},
	},
}
