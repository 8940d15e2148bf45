// Command export writes the drawing scenes to JSON, for inspection with
// external tools.  Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Ops    []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op        string  `json:"op"`
	Pts       [][]int `json:"pts,omitempty"`
	Color     string  `json:"color"`
	Style     string  `json:"style,omitempty"`
	LineWidth int     `json:"line_width,omitempty"`
	LineCap   string  `json:"line_cap,omitempty"`
	FillRule  string  `json:"fill_rule,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	for _, op := range tc.Ops {
		var jop jsonOp
		switch op := op.(type) {
		case testcases.DrawLine:
			jop.Op = "line"
			jop.Pts = pointsToJSON(op.Line.P1, op.Line.P2)
			jop.Color = colorToJSON(op.Line.Color)
			jop.Style = op.Line.Style.String()
			jop.LineWidth = max(1, op.Width)
			jop.LineCap = op.Cap.String()
		case testcases.DrawPolygon:
			jop.Op = "polygon"
			jop.Pts = pointsToJSON(op.Polygon.Points...)
			jop.Color = colorToJSON(op.Color)
			jop.Style = op.Style.String()
			jop.LineWidth = max(1, op.Width)
		case testcases.FillPolygon:
			jop.Op = "fill"
			jop.Pts = pointsToJSON(op.Polygon.Points...)
			jop.Color = colorToJSON(op.Color)
			jop.FillRule = op.Rule.String()
		case testcases.FloodFill:
			jop.Op = "flood"
			jop.Pts = pointsToJSON(op.At)
			jop.Color = colorToJSON(op.Color)
		}
		jtc.Ops = append(jtc.Ops, jop)
	}
	return jtc
}

func pointsToJSON(pts ...sketch.Point) [][]int {
	res := make([][]int, len(pts))
	for i, p := range pts {
		res[i] = []int{p.X, p.Y}
	}
	return res
}

func colorToJSON(c sketch.Color) string {
	return fmt.Sprintf("#%08x", uint32(c))
}
