package dto

import (
	"fmt"
	"time"

	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
)

type SegmentRequest struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	City   string    `json:"city"`
	State  string    `json:"state"`
	Remark string    `json:"remark"`
}

type LogDayRequest struct {
	Date     string           `json:"date"`
	Segments []SegmentRequest `json:"segments"`
}

// ToDomain translates the wire representation into a LogDay snapshot.
// Only the shape is validated here (parseable date, known statuses,
// end after start); ordering and contiguity are the upstream HOS
// computation's contract and are not re-checked.
func (r LogDayRequest) ToDomain() (domain.LogDay, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return domain.LogDay{}, fmt.Errorf("parse log day: invalid date %q, want YYYY-MM-DD", r.Date)
	}

	segments := make([]domain.DutySegment, 0, len(r.Segments))
	for i, s := range r.Segments {
		status, err := domain.ParseDutyStatus(s.Status)
		if err != nil {
			return domain.LogDay{}, fmt.Errorf("parse log day: segment %d: %w", i, err)
		}
		if !s.End.After(s.Start) {
			return domain.LogDay{}, fmt.Errorf("parse log day: segment %d: end must be after start", i)
		}

		segments = append(segments, domain.DutySegment{
			Start:  s.Start,
			End:    s.End,
			Status: status,
			City:   s.City,
			State:  s.State,
			Remark: s.Remark,
		})
	}

	return domain.LogDay{Date: date, Segments: segments}, nil
}

type RenderRequest struct {
	LogDayRequest
	Width   float64 `json:"width"`
	Density float64 `json:"density"`
	Format  string  `json:"format"`
}

type TotalsResponse struct {
	OffDutyHours      float64 `json:"off_duty_hours"`
	SleeperBerthHours float64 `json:"sleeper_berth_hours"`
	DrivingHours      float64 `json:"driving_hours"`
	OnDutyHours       float64 `json:"on_duty_hours"`
}

type RemarkEntryResponse struct {
	Time     string `json:"time"`
	Status   string `json:"status"`
	Location string `json:"location"`
	Remark   string `json:"remark"`
}

type SummaryResponse struct {
	Date    string                `json:"date"`
	Label   string                `json:"label"`
	Totals  TotalsResponse        `json:"totals"`
	Remarks []RemarkEntryResponse `json:"remarks"`
}
