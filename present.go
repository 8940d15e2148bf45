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
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionPadding is the space in pixels around a caption.
const captionPadding = 3

// Present copies src into dst, scaled to fill dst.Bounds().  Scaling uses
// nearest-neighbour sampling, so that individual pixels stay sharp.
//
// If caption is not empty, it is drawn in black on a white box in the
// top-left corner of dst, for example to show the active tool.
func Present(dst draw.Image, src image.Image, caption string) {
	db := dst.Bounds()
	draw.NearestNeighbor.Scale(dst, db, src, src.Bounds(), draw.Src, nil)

	if caption == "" {
		return
	}

	face := basicfont.Face7x13
	m := face.Metrics()
	w := font.MeasureString(face, caption).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	box := image.Rect(0, 0, w+2*captionPadding, h+2*captionPadding).
		Add(db.Min).Intersect(db)
	draw.Draw(dst, box, image.NewUniform(White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(Black),
		Face: face,
		Dot:  fixed.P(db.Min.X+captionPadding, db.Min.Y+captionPadding+m.Ascent.Ceil()),
	}
	d.DrawString(caption)
}
