// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package gotupper

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"
)

// Palette indices used by Render
const (
	emptyCell  = 0
	filledCell = 1
	cellBorder = 2
)

// plotPalette matches the original rectangle colors: white for empty
// cells, grey for filled ones, black for the cell borders
var plotPalette = color.Palette{
	color.White,
	color.Gray{Y: 0x80},
	color.Black,
}

// Render draws the grid as a paletted image with scale×scale pixels
// per cell. Grid column i lands at the (106-i)-th visual column,
// restoring left-to-right order on top of the decoder's column flip.
// Cells get a 1px border once scale is large enough to keep the cell
// interior visible.
func Render(g Grid, scale int) (*image.Paletted, error) {
	if scale < 1 {
		return nil, fmt.Errorf("scale must be positive: %v", scale)
	}

	img := image.NewPaletted(image.Rect(0, 0, GridWidth*scale, GridHeight*scale), plotPalette)
	for i := 0; i < GridWidth; i++ {
		v := GridWidth - 1 - i // visual column
		for j := 0; j < GridHeight; j++ {
			cell := uint8(emptyCell)
			if g[i][j] == 1 {
				cell = filledCell
			}
			for dx := 0; dx < scale; dx++ {
				for dy := 0; dy < scale; dy++ {
					x, y := v*scale+dx, j*scale+dy
					if scale >= 4 && (dx == 0 || dy == 0 || dx == scale-1 || dy == scale-1) {
						img.SetColorIndex(x, y, cellBorder)
					} else {
						img.SetColorIndex(x, y, cell)
					}
				}
			}
		}
	}
	return img, nil
}

// WritePNG renders the grid and encodes it as PNG
func WritePNG(w io.Writer, g Grid, scale int) error {
	img, err := Render(g, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// FromImage converts an arbitrary image into a plot grid: the image
// is scaled to 106×17 and dithered down to two tones, dark pixels
// becoming filled cells. The grid is laid out so that Render draws
// the same picture back.
func FromImage(i image.Image) Grid {
	scaledBounds := image.Rect(0, 0, GridWidth, GridHeight)
	scaledImage := image.NewRGBA(scaledBounds)
	draw.CatmullRom.Scale(scaledImage, scaledBounds, i, i.Bounds(), draw.Over, nil)

	// dither down to black and white
	palette := []color.Color{color.Black, color.White}
	ditherer := dither.NewDitherer(palette)
	ditherer.Matrix = dither.FloydSteinberg
	ditherer.Serpentine = true
	ditheredImage := ditherer.DitherPaletted(scaledImage)

	blackIndex := uint8(ditheredImage.Palette.Index(color.Black))
	var g Grid
	for x := 0; x < GridWidth; x++ {
		for y := 0; y < GridHeight; y++ {
			if ditheredImage.ColorIndexAt(x, y) == blackIndex {
				g[GridWidth-1-x][y] = 1
			}
		}
	}
	return g
}
