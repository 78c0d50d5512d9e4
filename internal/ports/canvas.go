package ports

import "image/color"

// Port: a boundary for the 2D drawing surface the renderer paints on.
// All coordinates are logical canvas pixels; adapters apply viewport
// scaling and device pixel density before producing output. Nothing in
// this contract preserves prior pixel state: every render is a full
// repaint starting from a background fill.
type Canvas interface {
	// Fill an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.Color)

	// Stroke a line between two points.
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)

	// Render text with its left baseline at (x, y).
	DrawText(s string, x, y, size float64, c color.Color)

	// Render text rotated by deg degrees clockwise about (x, y),
	// in the screen coordinate system (y grows downward).
	DrawTextRotated(s string, x, y, size, deg float64, c color.Color)
}
