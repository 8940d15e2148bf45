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

// TestCase defines a single drawing scene.
type TestCase struct {
	Name   string      // lowercase a-z, 0-9 and _ only
	Width  int         // canvas width in pixels
	Height int         // canvas height in pixels
	Ops    []Operation // applied in order to a black canvas
}

// Operation is one drawing step of a scene.
type Operation interface {
	isOperation()
}

// DrawLine rasterizes a single line.
type DrawLine struct {
	Line  sketch.Line
	Width int                   // line width (values < 1 mean 1)
	Cap   graphics.LineCapStyle // caps for thick lines
}

func (DrawLine) isOperation() {}

// DrawPolygon rasterizes the closed outline of a polygon.
type DrawPolygon struct {
	Polygon sketch.Polygon
	Color   sketch.Color
	Style   sketch.LineStyle
	Width   int
}

func (DrawPolygon) isOperation() {}

// FillPolygon paints the interior of a polygon.
type FillPolygon struct {
	Polygon sketch.Polygon
	Color   sketch.Color
	Rule    sketch.FillRule
}

func (FillPolygon) isOperation() {}

// FloodFill replaces the region around a seed point.
type FloodFill struct {
	At    sketch.Point
	Color sketch.Color
}

func (FloodFill) isOperation() {}

// pt is a helper to create a sketch.Point from x, y coordinates.
func pt(x, y int) sketch.Point {
	return sketch.Point{X: x, Y: y}
}

// line is a helper for a white line of the given style.
func line(x1, y1, x2, y2 int, style sketch.LineStyle) sketch.Line {
	return sketch.Line{
		P1:    pt(x1, y1),
		P2:    pt(x2, y2),
		Color: sketch.White,
		Style: style,
	}
}
