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

import "image/color"

// Color is a packed 0xAARRGGBB pixel value.  Colors are compared by exact
// equality; there is no blending.  The zero value is the sentinel returned
// by reads outside a raster.
type Color uint32

// Some commonly used opaque colors.
const (
	Black   Color = 0xFF000000
	White   Color = 0xFFFFFFFF
	Red     Color = 0xFFFF0000
	Green   Color = 0xFF00FF00
	Blue    Color = 0xFF0000FF
	Yellow  Color = 0xFFFFFF00
	Magenta Color = 0xFFFF00FF
	Gray    Color = 0xFFAAAAAA
)

// RGB returns the opaque color with the given components.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// NRGBA returns c as a non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// ColorModel converts arbitrary colors to packed Colors.
var ColorModel color.Model = color.ModelFunc(func(c color.Color) color.Color {
	return toColor(c)
})

func toColor(c color.Color) Color {
	if p, ok := c.(Color); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}
