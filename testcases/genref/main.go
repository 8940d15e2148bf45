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

// Command genref generates reference images for the scene tests.
//
// For every scene it writes the rendered raster as a PNG, and a vector
// rendition of the scene as a grayscale PDF for visual cross-checking
// against an independent renderer.  Flood fills have no vector
// equivalent and are left out of the PDF.
//
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pngPath := filepath.Join(refDir, name+".png")
			pdfPath := filepath.Join(refDir, name+".pdf")

			if err := writePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(tc testcases.TestCase, pngPath string) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, testcases.Render(tc).RGBA()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Scenes start on a black canvas.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; scenes use top-left with y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.DrawLine:
			page.SetStrokeColor(gray(op.Line.Color))
			setStroke(page, op.Line.Style, max(1, op.Width), op.Cap)
			moveTo(page, op.Line.P1)
			lineTo(page, op.Line.P2)
			page.Stroke()

		case testcases.DrawPolygon:
			if len(op.Polygon.Points) < 2 {
				continue
			}
			page.SetStrokeColor(gray(op.Color))
			setStroke(page, op.Style, max(1, op.Width), graphics.LineCapRound)
			polygonPath(page, op.Polygon)
			page.Stroke()

		case testcases.FillPolygon:
			if len(op.Polygon.Points) < 3 {
				continue
			}
			page.SetFillColor(gray(op.Color))
			polygonPath(page, op.Polygon)
			if op.Rule == sketch.EvenOdd {
				page.FillEvenOdd()
			} else {
				page.Fill()
			}
		}
	}

	return page.Close()
}

// setStroke sets the PDF stroke parameters which correspond to a line
// style, width and cap.
func setStroke(page *document.Page, style sketch.LineStyle, width int, lineCap graphics.LineCapStyle) {
	page.SetLineWidth(float64(width))
	page.SetLineCap(lineCap)
	page.SetLineJoin(graphics.LineJoinRound)
	switch style {
	case sketch.Dotted:
		page.SetLineDash([]float64{2, 2}, 0)
	case sketch.Dashed:
		page.SetLineDash([]float64{8, 4}, 0)
	default:
		page.SetLineDash(nil, 0)
	}
}

func polygonPath(page *document.Page, pg sketch.Polygon) {
	for i, p := range pg.Points {
		if i == 0 {
			moveTo(page, p)
		} else {
			lineTo(page, p)
		}
	}
	page.ClosePath()
}

// moveTo and lineTo place vertices at pixel centres.
func moveTo(page *document.Page, p sketch.Point) {
	page.MoveTo(float64(p.X)+0.5, float64(p.Y)+0.5)
}

func lineTo(page *document.Page, p sketch.Point) {
	page.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
}

// gray converts c to its luminance.
func gray(c sketch.Color) color.Color {
	n := c.NRGBA()
	y := 0.299*float64(n.R) + 0.587*float64(n.G) + 0.114*float64(n.B)
	return color.DeviceGray(y / 255)
}
