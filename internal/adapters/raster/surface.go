// Package raster adapts a gg drawing context to the renderer's Canvas
// port and owns the physical surface lifecycle.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/AYG3/Truck-Driver-Logbook/internal/render"
)

// Surface is a raster drawing surface sized from the hosting container's
// width and the display's device pixel density. Logical canvas
// coordinates are multiplied by a single scale factor, so strokes and
// text stay crisp on high-DPI displays instead of being upscaled.
//
// A Surface is exclusively owned by one render pass at a time; writes
// are strictly sequential and every pass repaints from the background.
type Surface struct {
	geom  render.Geometry
	scale float64
	dc    *gg.Context

	fnt   *truetype.Font
	faces map[float64]font.Face
}

// NewSurface allocates the backing image at
// containerWidth*density x proportional height physical pixels.
func NewSurface(geom render.Geometry, containerWidth, density float64) (*Surface, error) {
	if containerWidth <= 0 {
		return nil, errors.New("new surface: container width must be positive")
	}
	if density <= 0 {
		return nil, errors.New("new surface: pixel density must be positive")
	}

	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("new surface: parse embedded font: %w", err)
	}

	scale := containerWidth / geom.Width * density
	w := int(math.Round(geom.Width * scale))
	h := int(math.Round(geom.Height() * scale))

	dc := gg.NewContext(w, h)
	dc.SetLineCapButt()

	return &Surface{
		geom:  geom,
		scale: scale,
		dc:    dc,
		fnt:   fnt,
		faces: make(map[float64]font.Face),
	}, nil
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x*s.scale, y*s.scale, w*s.scale, h*s.scale)
	s.dc.Fill()
}

func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width * s.scale)
	s.dc.DrawLine(x1*s.scale, y1*s.scale, x2*s.scale, y2*s.scale)
	s.dc.Stroke()
}

func (s *Surface) DrawText(str string, x, y, size float64, c color.Color) {
	s.dc.SetFontFace(s.face(size * s.scale))
	s.dc.SetColor(c)
	s.dc.DrawString(str, x*s.scale, y*s.scale)
}

func (s *Surface) DrawTextRotated(str string, x, y, size, deg float64, c color.Color) {
	s.dc.Push()
	s.dc.RotateAbout(gg.Radians(deg), x*s.scale, y*s.scale)
	s.dc.SetFontFace(s.face(size * s.scale))
	s.dc.SetColor(c)
	s.dc.DrawString(str, x*s.scale, y*s.scale)
	s.dc.Pop()
}

// face returns a cached font face for a physical pixel size.
func (s *Surface) face(px float64) font.Face {
	if f, ok := s.faces[px]; ok {
		return f
	}
	f := truetype.NewFace(s.fnt, &truetype.Options{Size: px})
	s.faces[px] = f
	return f
}

// Image exposes the backing raster for inspection.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// PixelSize reports the physical surface dimensions.
func (s *Surface) PixelSize() (w, h int) {
	return s.dc.Width(), s.dc.Height()
}

// EncodePNG writes the rendered image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
