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

var polygonCases = []TestCase{
	{
		Name:   "rectangle",
		Width:  64,
		Height: 40,
		Ops: []Operation{DrawPolygon{
			Polygon: sketch.Rectangle(pt(10, 10), pt(50, 30)),
			Color:   sketch.White,
			Width:   1,
		}},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Ops: []Operation{DrawPolygon{
			Polygon: sketch.Triangle(pt(10, 10), pt(54, 54)),
			Color:   sketch.White,
			Width:   1,
		}},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Ops: []Operation{DrawPolygon{
			Polygon: sketch.Circle(pt(32, 32), pt(56, 40)),
			Color:   sketch.White,
			Width:   1,
		}},
	},
	{
		Name:   "dashed_circle_w3",
		Width:  64,
		Height: 64,
		Ops: []Operation{DrawPolygon{
			Polygon: sketch.Circle(pt(32, 32), pt(52, 32)),
			Color:   sketch.White,
			Style:   sketch.Dashed,
			Width:   3,
		}},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Ops: []Operation{DrawPolygon{
			Polygon: star(32, 32, 25),
			Color:   sketch.White,
			Width:   1,
		}},
	},
}
