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
	"math"

	"seehuhn.de/go/sketch"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Width:  64,
		Height: 64,
		Ops: []Operation{FillPolygon{
			Polygon: triangle(10, 50, 32, 10, 54, 50),
			Color:   sketch.White,
			Rule:    sketch.NonZero,
		}},
	},
	{
		Name:   "star_nonzero",
		Width:  64,
		Height: 64,
		Ops: []Operation{FillPolygon{
			Polygon: star(32, 32, 25),
			Color:   sketch.White,
			Rule:    sketch.NonZero,
		}},
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Ops: []Operation{FillPolygon{
			Polygon: star(32, 32, 25),
			Color:   sketch.White,
			Rule:    sketch.EvenOdd,
		}},
	},
	{
		Name:   "rectangle_outlined",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			FillPolygon{
				Polygon: sketch.Rectangle(pt(10, 10), pt(53, 53)),
				Color:   sketch.Gray,
				Rule:    sketch.NonZero,
			},
			DrawPolygon{
				Polygon: sketch.Rectangle(pt(10, 10), pt(53, 53)),
				Color:   sketch.White,
				Width:   1,
			},
		},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Ops: []Operation{FillPolygon{
			Polygon: sketch.Circle(pt(32, 32), pt(32, 8)),
			Color:   sketch.White,
			Rule:    sketch.NonZero,
		}},
	},
	{
		Name:   "clipped",
		Width:  64,
		Height: 64,
		Ops: []Operation{FillPolygon{
			Polygon: triangle(-30, 60, 32, -20, 90, 60),
			Color:   sketch.White,
			Rule:    sketch.NonZero,
		}},
	},
}

// triangle builds a triangle from three vertices.
func triangle(x1, y1, x2, y2, x3, y3 int) sketch.Polygon {
	return sketch.Polygon{Points: []sketch.Point{pt(x1, y1), pt(x2, y2), pt(x3, y3)}}
}

// star builds a self-intersecting five-pointed star.  The centre is
// covered twice, so that the fill rules give different results.
func star(cx, cy, r float64) sketch.Polygon {
	pts := make([]sketch.Point, 5)
	for i := range pts {
		// every second vertex of a regular pentagon, starting at the top
		phi := -math.Pi/2 + float64(2*i)*2*math.Pi/5
		pts[i] = pt(int(math.Round(cx+r*math.Cos(phi))), int(math.Round(cy+r*math.Sin(phi))))
	}
	return sketch.Polygon{Points: pts}
}
