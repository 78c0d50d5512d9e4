package render

import (
	"math"
	"time"

	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
	"github.com/AYG3/Truck-Driver-Logbook/internal/ports"
)

// Renderer converts a LogDay into pixels on a Canvas.
//
// A Renderer holds configuration only: rendering is a pure function of
// (LogDay, viewport width) and the target canvas, so calling Render
// twice with identical inputs produces identical output. The pipeline
// never fails partway: each stage is total given valid input.
type Renderer struct {
	Geometry Geometry
	Palette  Palette

	// Policy decides which driving remarks earn a label.
	// Nil falls back to DefaultRemarkPolicy.
	Policy ports.RemarkPolicy
}

// NewRenderer returns a renderer with the production geometry, palette
// and remark policy.
func NewRenderer() *Renderer {
	return &Renderer{
		Geometry: DefaultGeometry(),
		Palette:  DefaultPalette(),
		Policy:   DefaultRemarkPolicy(),
	}
}

// Render executes the full pipeline in strict order: grid, then duty
// segments, then remarks. The grid stage repaints the whole surface, so
// order matters. viewportWidth is the hosting container's width in CSS
// pixels and only influences remark label sizing; pass 0 to use the
// logical canvas width.
func (r *Renderer) Render(cv ports.Canvas, day domain.LogDay, viewportWidth float64) {
	if viewportWidth <= 0 {
		viewportWidth = r.Geometry.Width
	}

	r.drawGrid(cv)
	r.drawSegments(cv, day)
	r.drawRemarks(cv, day, viewportWidth)
}

func (r *Renderer) policy() ports.RemarkPolicy {
	if r.Policy != nil {
		return r.Policy
	}
	return DefaultRemarkPolicy()
}

// visibleSegments applies the configured boundary mode. Under
// BoundaryClamp every segment survives (the mapper collapses fully
// outside spans to a zero-width line); under BoundaryDrop segments with
// no overlap with the day window are skipped.
func (r *Renderer) visibleSegments(day domain.LogDay) []domain.DutySegment {
	if r.Geometry.Boundary != BoundaryDrop {
		return day.Segments
	}

	midnight := day.Midnight()
	dayEnd := midnight.Add(24 * time.Hour)

	out := make([]domain.DutySegment, 0, len(day.Segments))
	for _, seg := range day.Segments {
		if !seg.End.After(midnight) || !seg.Start.Before(dayEnd) {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// align snaps a coordinate to the half-pixel so axis-aligned 1px strokes
// land on a single pixel column instead of anti-aliasing across two.
func align(v float64) float64 {
	return math.Floor(v) + 0.5
}

// textWidth estimates rendered width from character count, the same
// approximation used for collision spans and label centering.
func textWidth(s string, size float64) float64 {
	return float64(len(s)) * size * 0.6
}
