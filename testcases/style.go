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

var styleCases = []TestCase{
	{
		Name:   "dotted_horizontal",
		Width:  32,
		Height: 8,
		Ops:    []Operation{DrawLine{Line: line(1, 4, 30, 4, sketch.Dotted)}},
	},
	{
		Name:   "dashed_horizontal",
		Width:  32,
		Height: 8,
		Ops:    []Operation{DrawLine{Line: line(1, 4, 30, 4, sketch.Dashed)}},
	},
	{
		Name:   "dotted_vertical",
		Width:  8,
		Height: 32,
		Ops:    []Operation{DrawLine{Line: line(4, 1, 4, 30, sketch.Dotted)}},
	},
	{
		Name:   "dashed_steep",
		Width:  32,
		Height: 48,
		Ops:    []Operation{DrawLine{Line: line(4, 2, 20, 45, sketch.Dashed)}},
	},
	{
		// the pattern starts at the left end, whichever end is P1
		Name:   "dashed_reversed",
		Width:  32,
		Height: 8,
		Ops:    []Operation{DrawLine{Line: line(30, 4, 1, 4, sketch.Dashed)}},
	},
	{
		Name:   "dotted_rectangle",
		Width:  64,
		Height: 48,
		Ops: []Operation{DrawPolygon{
			Polygon: sketch.Rectangle(pt(8, 8), pt(55, 39)),
			Color:   sketch.White,
			Style:   sketch.Dotted,
			Width:   1,
		}},
	},
}
