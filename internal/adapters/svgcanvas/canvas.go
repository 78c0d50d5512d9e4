// Package svgcanvas adapts an SVG document builder to the renderer's
// Canvas port for vector output.
package svgcanvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// Canvas accumulates SVG elements for one render pass. The document
// keeps the logical coordinate system in its viewBox and advertises the
// container width as its display size, so the host scales it for free
// and device pixel density never enters the picture.
type Canvas struct {
	b      strings.Builder
	closed bool
}

// New starts an SVG document with a logicalW x logicalH viewBox shown at
// displayW CSS pixels wide.
func New(logicalW, logicalH, displayW float64) *Canvas {
	c := &Canvas{}
	displayH := logicalH * displayW / logicalW
	fmt.Fprintf(&c.b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" font-family="Helvetica, Arial, sans-serif">`+"\n",
		f(displayW), f(displayH), f(logicalW), f(logicalH))
	return c
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	fmt.Fprintf(&c.b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		f(x), f(y), f(w), f(h), hex(col))
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col color.Color) {
	fmt.Fprintf(&c.b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		f(x1), f(y1), f(x2), f(y2), hex(col), f(width))
}

func (c *Canvas) DrawText(s string, x, y, size float64, col color.Color) {
	fmt.Fprintf(&c.b, `<text x="%s" y="%s" font-size="%s" fill="%s">%s</text>`+"\n",
		f(x), f(y), f(size), hex(col), textEscaper.Replace(s))
}

func (c *Canvas) DrawTextRotated(s string, x, y, size, deg float64, col color.Color) {
	fmt.Fprintf(&c.b, `<text x="%s" y="%s" font-size="%s" fill="%s" transform="rotate(%s %s %s)">%s</text>`+"\n",
		f(x), f(y), f(size), hex(col), f(deg), f(x), f(y), textEscaper.Replace(s))
}

// String finalizes and returns the SVG document. Further drawing after
// String is ignored by the document structure (the root is closed).
func (c *Canvas) String() string {
	if !c.closed {
		c.b.WriteString("</svg>\n")
		c.closed = true
	}
	return c.b.String()
}

// f formats coordinates with fixed precision so output is byte-stable
// across runs.
func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
