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

// lineCases exercise the three branches of thin line scan conversion.
var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  32,
		Height: 16,
		Ops:    []Operation{DrawLine{Line: line(2, 8, 29, 8, sketch.Solid)}},
	},
	{
		Name:   "vertical",
		Width:  16,
		Height: 32,
		Ops:    []Operation{DrawLine{Line: line(8, 29, 8, 2, sketch.Solid)}},
	},
	{
		Name:   "shallow",
		Width:  32,
		Height: 32,
		Ops:    []Operation{DrawLine{Line: line(2, 5, 29, 20, sketch.Solid)}},
	},
	{
		Name:   "steep",
		Width:  32,
		Height: 32,
		Ops:    []Operation{DrawLine{Line: line(5, 2, 20, 29, sketch.Solid)}},
	},
	{
		Name:   "diagonal",
		Width:  32,
		Height: 32,
		Ops:    []Operation{DrawLine{Line: line(2, 29, 29, 2, sketch.Solid)}},
	},
	{
		Name:   "reversed",
		Width:  32,
		Height: 32,
		Ops:    []Operation{DrawLine{Line: line(29, 20, 2, 5, sketch.Solid)}},
	},
	{
		Name:   "point",
		Width:  8,
		Height: 8,
		Ops:    []Operation{DrawLine{Line: line(4, 4, 4, 4, sketch.Solid)}},
	},
	{
		// samples land on exact half pixels and must round up
		Name:   "half_pixel",
		Width:  16,
		Height: 8,
		Ops:    []Operation{DrawLine{Line: line(0, 0, 10, 5, sketch.Solid)}},
	},
	{
		Name:   "clipped",
		Width:  32,
		Height: 32,
		Ops:    []Operation{DrawLine{Line: line(-20, -10, 50, 40, sketch.Solid)}},
	},
	{
		Name:   "overlap",
		Width:  32,
		Height: 32,
		Ops: []Operation{
			DrawLine{Line: line(2, 16, 29, 16, sketch.Solid)},
			DrawLine{Line: sketch.Line{P1: pt(16, 2), P2: pt(16, 29), Color: sketch.Gray}},
		},
	},
}
