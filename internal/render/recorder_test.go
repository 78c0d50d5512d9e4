package render

import "image/color"

// recordingCanvas captures drawing operations for assertions without
// rasterizing anything.
type recordedRect struct {
	x, y, w, h float64
	c          color.Color
}

type recordedLine struct {
	x1, y1, x2, y2 float64
	width          float64
	c              color.Color
}

type recordedText struct {
	s       string
	x, y    float64
	size    float64
	deg     float64
	rotated bool
	c       color.Color
}

type recordingCanvas struct {
	rects []recordedRect
	lines []recordedLine
	texts []recordedText
}

func (r *recordingCanvas) FillRect(x, y, w, h float64, c color.Color) {
	r.rects = append(r.rects, recordedRect{x, y, w, h, c})
}

func (r *recordingCanvas) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	r.lines = append(r.lines, recordedLine{x1, y1, x2, y2, width, c})
}

func (r *recordingCanvas) DrawText(s string, x, y, size float64, c color.Color) {
	r.texts = append(r.texts, recordedText{s: s, x: x, y: y, size: size, c: c})
}

func (r *recordingCanvas) DrawTextRotated(s string, x, y, size, deg float64, c color.Color) {
	r.texts = append(r.texts, recordedText{s: s, x: x, y: y, size: size, deg: deg, rotated: true, c: c})
}

// linesWithColor filters recorded lines by stroke color.
func (r *recordingCanvas) linesWithColor(c color.Color) []recordedLine {
	var out []recordedLine
	for _, l := range r.lines {
		if l.c == c {
			out = append(out, l)
		}
	}
	return out
}
