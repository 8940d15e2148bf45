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

// Render replays tc on a new raster.  The canvas starts out black, so
// that the scene reads as coverage when converted to gray.
func Render(tc TestCase) *sketch.Raster {
	r := sketch.NewRaster(tc.Width, tc.Height)
	r.SetClearColor(sketch.Black)
	r.Clear()

	lines := sketch.NewLineRasterizer(r)
	polygons := sketch.NewPolygonRasterizer(lines)
	filler := sketch.NewPolygonFiller(r)
	flood := sketch.NewFloodFiller(r)

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case DrawLine:
			lines.SetLineWidth(op.Width)
			lines.Cap = op.Cap
			lines.Rasterize(op.Line)
		case DrawPolygon:
			polygons.Rasterize(op.Polygon, op.Color, op.Style, op.Width)
		case FillPolygon:
			filler.Fill(op.Polygon, op.Color, op.Rule)
		case FloodFill:
			flood.FloodFill(op.At.X, op.At.Y, op.Color)
		}
	}
	return r
}
