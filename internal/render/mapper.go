package render

import (
	"time"

	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
)

// TimeToX maps a timestamp to an X coordinate on the reference date's
// 24-hour axis. Elapsed hours are computed from the absolute instant
// difference to midnight, not from wall-clock fields, so daylight-saving
// transitions and locale quirks cannot skew the mapping. The result is
// clamped to the [0h, 24h] window: any timestamp before midnight maps to
// the left grid edge, any timestamp at or past the next midnight maps to
// the right grid edge.
func TimeToX(g Geometry, t, midnight time.Time) float64 {
	hours := t.Sub(midnight).Hours()
	if hours < 0 {
		hours = 0
	}
	if hours > 24 {
		hours = 24
	}
	return g.PaddingLeft + hours*g.PixelsPerHour()
}

// StatusToY returns the vertical midpoint of the duty row for a status.
// Total over the four statuses; rows are ordered top to bottom as
// Off Duty, Sleeper Berth, Driving, On Duty.
func StatusToY(g Geometry, s domain.DutyStatus) float64 {
	return g.PaddingTop + float64(s.RowIndex())*g.RowHeight + g.RowHeight/2
}
