package domain

import (
	"strings"
	"time"
)

// Represents one interval of constant duty status on a driver's log.
// Segments are produced by the upstream HOS computation already sorted,
// contiguous and non-overlapping; this package does not re-validate
// those invariants.
type DutySegment struct {
	Start  time.Time
	End    time.Time
	Status DutyStatus
	City   string
	State  string
	Remark string
}

// Duration returns the elapsed time covered by the segment.
func (s DutySegment) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Location formats the segment's location as "City, ST".
// Returns an empty string when no city is recorded.
func (s DutySegment) Location() string {
	city := strings.TrimSpace(s.City)
	if city == "" {
		return ""
	}

	state := strings.TrimSpace(s.State)
	if state == "" {
		return city
	}
	return city + ", " + state
}
