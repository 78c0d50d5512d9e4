package render

import (
	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
	"github.com/AYG3/Truck-Driver-Logbook/internal/ports"
)

const traceWidth = 2

// drawSegments traces the duty-status timeline as a stepped line: one
// horizontal stroke per segment at its row midpoint, joined by vertical
// connectors wherever the status changes rows. This mirrors the pen
// trace on a paper log.
func (r *Renderer) drawSegments(cv ports.Canvas, day domain.LogDay) {
	g := r.Geometry
	midnight := day.Midnight()
	segments := r.visibleSegments(day)

	for i, seg := range segments {
		xStart := TimeToX(g, seg.Start, midnight)
		xEnd := TimeToX(g, seg.End, midnight)
		y := align(StatusToY(g, seg.Status))

		// The trace always touches the axis origin, even when the first
		// segment's timestamp sits marginally before midnight.
		if i == 0 {
			xStart = g.PaddingLeft
		}

		cv.StrokeLine(align(xStart), y, align(xEnd), y, traceWidth, r.Palette.Trace)

		if i == 0 {
			continue
		}

		// Vertical connector at the shared boundary with the previous
		// segment. Contiguity makes prev.End and seg.Start the same X.
		prev := segments[i-1]
		x := align(TimeToX(g, prev.End, midnight))
		yPrev := align(StatusToY(g, prev.Status))
		if yPrev != y {
			cv.StrokeLine(x, yPrev, x, y, traceWidth, r.Palette.Trace)
		}
	}
}
