package domain

import (
	"math"
	"time"
)

// Represents one calendar day of duty records: the render input.
// The Date field is the reference calendar date; Midnight of that date
// defines the 0-24h window for coordinate mapping. A LogDay is an
// immutable snapshot and is rebuilt from upstream data on every render.
type LogDay struct {
	Date     time.Time
	Segments []DutySegment
}

// Midnight returns 00:00 of the reference date in the date's location.
func (d LogDay) Midnight() time.Time {
	y, m, day := d.Date.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Date.Location())
}

// AccessibilityLabel describes the rendered grid for screen readers.
func (d LogDay) AccessibilityLabel() string {
	return "Driver's daily log grid for " + d.Date.Format("2006-01-02")
}

// Per-status hour totals for one log day, rounded to two decimals.
// A compliant day's totals sum to 24 hours.
type DutyTotals struct {
	OffDutyHours      float64
	SleeperBerthHours float64
	DrivingHours      float64
	OnDutyHours       float64
}

// Totals sums segment durations per duty status.
func (d LogDay) Totals() DutyTotals {
	var t DutyTotals
	for _, seg := range d.Segments {
		hours := seg.Duration().Hours()
		switch seg.Status {
		case StatusOffDuty:
			t.OffDutyHours += hours
		case StatusSleeperBerth:
			t.SleeperBerthHours += hours
		case StatusDriving:
			t.DrivingHours += hours
		case StatusOnDuty:
			t.OnDutyHours += hours
		}
	}

	t.OffDutyHours = round2(t.OffDutyHours)
	t.SleeperBerthHours = round2(t.SleeperBerthHours)
	t.DrivingHours = round2(t.DrivingHours)
	t.OnDutyHours = round2(t.OnDutyHours)
	return t
}

// One row of the remarks table: a status change with time and location.
type RemarkEntry struct {
	Time     string
	Status   string
	Location string
	Remark   string
}

// RemarkTable lists every status change in chronological order, the way
// a DOT inspector reads the remarks section of a paper log.
func (d LogDay) RemarkTable() []RemarkEntry {
	entries := make([]RemarkEntry, 0, len(d.Segments))
	for _, seg := range d.Segments {
		location := seg.Location()
		if location == "" {
			location = "Unknown location"
		}

		entries = append(entries, RemarkEntry{
			Time:     seg.Start.Format("15:04"),
			Status:   seg.Status.DisplayName(),
			Location: location,
			Remark:   seg.Remark,
		})
	}
	return entries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
