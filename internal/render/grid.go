package render

import (
	"strconv"

	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
	"github.com/AYG3/Truck-Driver-Logbook/internal/ports"
)

const (
	rowLabelSize  = 11
	hourLabelSize = 10
)

// drawGrid paints the static reference frame: background, the four duty
// rows with their labels, 25 hour lines with heavier marks every six
// hours, quarter-hour ticks and the hour captions beneath the grid.
// This stage repaints the entire surface, so it must run first.
func (r *Renderer) drawGrid(cv ports.Canvas) {
	g := r.Geometry
	p := r.Palette

	cv.FillRect(0, 0, g.Width, g.Height(), p.Background)
	cv.FillRect(g.PaddingLeft, g.PaddingTop, g.GridWidth(), g.GridHeight(), p.GridArea)

	// Quarter-hour ticks first so hour lines draw over them.
	ppq := g.PixelsPerHour() / 4
	for hour := 0; hour < 24; hour++ {
		for q := 1; q <= 3; q++ {
			x := align(g.PaddingLeft + float64(hour)*g.PixelsPerHour() + float64(q)*ppq)
			cv.StrokeLine(x, g.PaddingTop, x, g.GridBottom(), 1, p.Tick)
		}
	}

	// Hour lines 0..24; every sixth hour is a heavier marker.
	for hour := 0; hour <= 24; hour++ {
		x := align(g.PaddingLeft + float64(hour)*g.PixelsPerHour())
		width := 1.0
		c := p.LineLight
		if hour%6 == 0 {
			width = 2
			c = p.LineHeavy
		}
		cv.StrokeLine(x, g.PaddingTop, x, g.GridBottom(), width, c)

		if label := hourLabel(hour); label != "" {
			lx := x - textWidth(label, hourLabelSize)/2
			cv.DrawText(label, lx, g.GridBottom()+16, hourLabelSize, p.Label)
		}
	}

	// Row dividers and left-aligned row labels.
	for row := 0; row <= g.RowCount; row++ {
		y := align(g.PaddingTop + float64(row)*g.RowHeight)
		c := p.LineLight
		if row == 0 || row == g.RowCount {
			c = p.LineHeavy
		}
		cv.StrokeLine(g.PaddingLeft, y, g.PaddingLeft+g.GridWidth(), y, 1, c)
	}
	for _, status := range domain.AllStatuses() {
		y := StatusToY(g, status) + rowLabelSize/2 - 1
		cv.DrawText(status.DisplayName(), 8, y, rowLabelSize, p.Label)
	}
}

// hourLabel follows the paper-log caption convention: midnight at both
// ends, noon in the middle, even hours numbered, odd hours blank.
func hourLabel(hour int) string {
	switch {
	case hour == 0 || hour == 24:
		return "M"
	case hour == 12:
		return "N"
	case hour%2 == 0:
		return strconv.Itoa(hour)
	}
	return ""
}
