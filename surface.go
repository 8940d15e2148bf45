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

package sketch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Surface is a grid of pixels which the rasterizers draw onto.
type Surface interface {
	// SetPixel writes c at (x, y).  Writes outside the surface are
	// dropped.
	SetPixel(x, y int, c Color)

	// GetPixel returns the color at (x, y), or 0 outside the surface.
	GetPixel(x, y int) Color

	// Clear fills every pixel with the clear color.
	Clear()

	// SetClearColor sets the color used by future calls to Clear.
	// It does not repaint.
	SetClearColor(c Color)

	Width() int
	Height() int
}

// ErrSizeMismatch is returned when copying between rasters of different
// dimensions.
var ErrSizeMismatch = errors.New("raster size mismatch")

// Raster is a width×height grid of colors.  The dimensions are fixed for
// the lifetime of the raster.
//
// Raster implements [image.Image] and [draw.Image], so that it can be
// presented or encoded directly.
type Raster struct {
	width, height int
	pix           []Color // row-major
	clearColor    Color
}

var (
	_ Surface     = (*Raster)(nil)
	_ image.Image = (*Raster)(nil)
)

// NewRaster allocates a raster.  All pixels are initially 0.
// Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	width = max(width, 0)
	height = max(height, 0)
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the number of columns.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the number of rows.
func (r *Raster) Height() int {
	return r.height
}

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// SetPixel writes c at (x, y).  Out-of-bounds writes are logged and
// otherwise ignored.
func (r *Raster) SetPixel(x, y int, c Color) {
	if !r.inBounds(x, y) {
		Logger().Debug("pixel out of bounds", "x", x, "y", y)
		return
	}
	r.pix[y*r.width+x] = c
}

// GetPixel returns the color at (x, y), or 0 if the position is outside
// the raster.
func (r *Raster) GetPixel(x, y int) Color {
	if !r.inBounds(x, y) {
		return 0
	}
	return r.pix[y*r.width+x]
}

// Clear fills the raster with the clear color.
func (r *Raster) Clear() {
	c := r.clearColor
	for i := range r.pix {
		r.pix[i] = c
	}
}

// SetClearColor sets the color used by [Raster.Clear].
func (r *Raster) SetClearColor(c Color) {
	r.clearColor = c
}

// ClearColor returns the color used by [Raster.Clear].
func (r *Raster) ClearColor() Color {
	return r.clearColor
}

// CopyFrom overwrites the contents of r with the pixels of src.
// Both surfaces must have the same dimensions.
func (r *Raster) CopyFrom(src Surface) error {
	if src.Width() != r.width || src.Height() != r.height {
		return fmt.Errorf("%w: cannot copy %dx%d into %dx%d",
			ErrSizeMismatch, src.Width(), src.Height(), r.width, r.height)
	}

	switch src := src.(type) {
	case *Raster:
		copy(r.pix, src.pix)
	case *DoubleBuffered:
		copy(r.pix, src.preview.pix)
	default:
		for y := range r.height {
			row := r.pix[y*r.width : (y+1)*r.width]
			for x := range row {
				row[x] = src.GetPixel(x, y)
			}
		}
	}
	return nil
}

// ColorModel implements the [image.Image] interface.
func (r *Raster) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the [image.Image] interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// At implements the [image.Image] interface.
func (r *Raster) At(x, y int) color.Color {
	return r.GetPixel(x, y)
}

// Set implements the [draw.Image] interface.
func (r *Raster) Set(x, y int, c color.Color) {
	r.SetPixel(x, y, toColor(c))
}

// RGBA returns a copy of the raster as an [image.RGBA].
func (r *Raster) RGBA() *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	for y := range r.height {
		for x := range r.width {
			img.Set(x, y, r.pix[y*r.width+x].NRGBA())
		}
	}
	return img
}

// DoubleBuffered composes a committed base layer and a scratch preview
// layer of identical size into a single surface.
//
// All reads and writes go to the preview layer.  The base layer is only
// touched by Clear, SetClearColor, CopyFrom and EndPreview.  A typical
// interaction calls StartPreview, draws speculative content and then
// either calls EndPreview to commit or starts the next preview to discard.
//
// Drawing without a preceding StartPreview accumulates in the preview
// layer until the next reset; avoiding this is up to the caller.
type DoubleBuffered struct {
	base    *Raster
	preview *Raster
}

var _ Surface = (*DoubleBuffered)(nil)

// NewDoubleBuffered allocates both layers.
func NewDoubleBuffered(width, height int) *DoubleBuffered {
	return &DoubleBuffered{
		base:    NewRaster(width, height),
		preview: NewRaster(width, height),
	}
}

// Base returns the committed layer.
func (d *DoubleBuffered) Base() *Raster {
	return d.base
}

// Preview returns the scratch layer.  This is the layer to present on
// screen.
func (d *DoubleBuffered) Preview() *Raster {
	return d.preview
}

// SetPixel writes to the preview layer.
func (d *DoubleBuffered) SetPixel(x, y int, c Color) {
	d.preview.SetPixel(x, y, c)
}

// GetPixel reads from the preview layer.
func (d *DoubleBuffered) GetPixel(x, y int) Color {
	return d.preview.GetPixel(x, y)
}

// Clear clears both layers.
func (d *DoubleBuffered) Clear() {
	d.base.Clear()
	d.preview.Clear()
}

// SetClearColor sets the clear color of both layers.
func (d *DoubleBuffered) SetClearColor(c Color) {
	d.base.SetClearColor(c)
	d.preview.SetClearColor(c)
}

// Width returns the number of columns.
func (d *DoubleBuffered) Width() int {
	return d.base.Width()
}

// Height returns the number of rows.
func (d *DoubleBuffered) Height() int {
	return d.base.Height()
}

// CopyFrom copies src into both layers.
func (d *DoubleBuffered) CopyFrom(src Surface) error {
	if err := d.base.CopyFrom(src); err != nil {
		return err
	}
	return d.preview.CopyFrom(d.base)
}

// StartPreview resets the preview layer to a copy of the base layer.
func (d *DoubleBuffered) StartPreview() {
	copy(d.preview.pix, d.base.pix)
}

// EndPreview commits the preview layer into the base layer.
func (d *DoubleBuffered) EndPreview() {
	copy(d.base.pix, d.preview.pix)
	Logger().Debug("preview committed", "width", d.base.width, "height", d.base.height)
}

// CancelPreview discards everything drawn since the last commit.
func (d *DoubleBuffered) CancelPreview() {
	d.StartPreview()
}
