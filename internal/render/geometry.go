package render

import "image/color"

// BoundaryMode selects how segments falling outside the reference date's
// 24-hour window are handled.
type BoundaryMode int

const (
	// BoundaryClamp clamps out-of-window spans to the grid edges; a
	// segment entirely outside the day collapses to a zero-width line
	// at the nearest edge.
	BoundaryClamp BoundaryMode = iota

	// BoundaryDrop skips segments entirely outside the day. Segments
	// that merely spill over midnight are still clamped.
	BoundaryDrop
)

// Geometry fixes the logical layout of the log grid. Values are in
// logical canvas pixels; adapters scale them to the physical surface.
// Geometry is immutable configuration: construct once, pass by value.
type Geometry struct {
	Width float64

	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64
	PaddingLeft   float64

	RowCount  int
	RowHeight float64

	// Remarks lane below the grid.
	RemarkGap        float64 // vertical gap between grid bottom and lane
	RemarkLaneHeight float64
	RemarkRowHeight  float64 // vertical offset per stacking row
	RemarkPadding    float64 // horizontal tolerance between same-row labels
	MinRemarkSpan    float64 // spans narrower than this are not labeled

	Boundary BoundaryMode
}

// DefaultGeometry returns the production layout. GridWidth works out to
// 890px, giving the familiar 37.08 pixels per hour.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:            1050,
		PaddingTop:       40,
		PaddingRight:     60,
		PaddingBottom:    30,
		PaddingLeft:      100,
		RowCount:         4,
		RowHeight:        60,
		RemarkGap:        30,
		RemarkLaneHeight: 140,
		RemarkRowHeight:  18,
		RemarkPadding:    5,
		MinRemarkSpan:    9, // just under 15 minutes at the default scale
		Boundary:         BoundaryClamp,
	}
}

func (g Geometry) GridWidth() float64 {
	return g.Width - g.PaddingLeft - g.PaddingRight
}

func (g Geometry) GridHeight() float64 {
	return float64(g.RowCount) * g.RowHeight
}

func (g Geometry) GridBottom() float64 {
	return g.PaddingTop + g.GridHeight()
}

func (g Geometry) PixelsPerHour() float64 {
	return g.GridWidth() / 24
}

func (g Geometry) RemarkLaneTop() float64 {
	return g.GridBottom() + g.RemarkGap
}

// Height is the full logical canvas height, remarks lane included.
func (g Geometry) Height() float64 {
	return g.RemarkLaneTop() + g.RemarkLaneHeight + g.PaddingBottom
}

// Palette holds the fixed drawing colors. The defaults imitate a paper
// log form: light ruled grid, darker six-hour markers, pen-blue trace.
type Palette struct {
	Background color.Color
	GridArea   color.Color
	LineLight  color.Color
	LineHeavy  color.Color
	Tick       color.Color
	Label      color.Color
	Trace      color.Color
	Bracket    color.Color
	RemarkText color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
		GridArea:   color.RGBA{0xfb, 0xfa, 0xf2, 0xff},
		LineLight:  color.RGBA{0xc8, 0xc8, 0xc8, 0xff},
		LineHeavy:  color.RGBA{0x6e, 0x6e, 0x6e, 0xff},
		Tick:       color.RGBA{0xe6, 0xe4, 0xdc, 0xff},
		Label:      color.RGBA{0x33, 0x33, 0x33, 0xff},
		Trace:      color.RGBA{0x14, 0x3c, 0x8c, 0xff},
		Bracket:    color.RGBA{0x5a, 0x5a, 0x5a, 0xff},
		RemarkText: color.RGBA{0x33, 0x33, 0x33, 0xff},
	}
}
